package prompt

// Fallback is the fixed sample list served when the content directory cannot
// be read. It returns a fresh slice on every call.
func Fallback() []Entry {
	return []Entry{
		{
			Slug:     "auto-populate-realistic-content",
			Title:    "Auto-populate with realistic content",
			Category: "auto-populate",
			Language: "English",
			Tags:     []string{"content", "text", "automation", "realistic data"},
			Content:  "# Prompt\n\nPlease generate realistic content for all text layers in the selected design. Include names, addresses, product descriptions, and other relevant placeholder content that matches the context of the design.\n\n# How to Use\n\n1. Select the frame or component you want to populate\n2. Run this prompt\n3. The system will automatically fill text layers with contextual content",
		},
		{
			Slug:     "design-annotations",
			Title:    "Add design annotations automatically",
			Category: "annotation",
			Language: "English",
			Tags:     []string{"documentation", "comments", "review", "handoff", "collaboration"},
			Content:  "# Prompt\n\nCreate comprehensive design annotations for the selected elements, including spacing, typography, colors, and interaction notes for developer handoff.\n\n# How to Use\n\n1. Select the elements you want to annotate\n2. Run this prompt\n3. Review and customize the generated annotations",
		},
		{
			Slug:     "component-overrides-batch",
			Title:    "Swap component instances efficiently",
			Category: "overrides",
			Language: "English",
			Tags:     []string{"components", "instances", "batch", "design system", "efficiency"},
			Content:  "# Prompt\n\nEfficiently swap and update multiple component instances while preserving overrides and maintaining design system consistency.\n\n# How to Use\n\n1. Select multiple component instances\n2. Run this prompt\n3. Choose the target component to swap to",
		},
		{
			Slug:     "prototype-to-figjam-connectors",
			Title:    "Convert prototypes to FigJam connectors",
			Category: "connectors",
			Language: "English",
			Tags:     []string{"figjam", "prototype", "flowchart", "documentation", "user flows"},
			Content:  "# Prompt\n\nTransform your prototype connections into clean FigJam connector diagrams for better documentation and stakeholder communication.\n\n# How to Use\n\n1. Create your prototype flows in Figma\n2. Run this prompt on the selected frames\n3. Export or copy the generated connector diagram to FigJam",
		},
		{
			Slug:     "creative-color-palettes",
			Title:    "Generate creative color palettes",
			Category: "vibe-design",
			Language: "English",
			Tags:     []string{"colors", "creative", "inspiration", "branding", "aesthetics"},
			Content:  "# Prompt\n\nGenerate inspiring and harmonious color palettes based on mood, brand direction, or specific aesthetic requirements for your design project.\n\n# How to Use\n\n1. Describe the mood or brand direction you want\n2. Run this prompt\n3. Apply the generated colors to your design elements",
		},
		{
			Slug:     "korean-content-generation",
			Title:    "한국어 콘텐츠 자동 생성",
			Category: "auto-populate",
			Language: "한국어",
			Tags:     []string{"한국어", "콘텐츠", "자동화", "로컬라이제이션"},
			Content:  "# Prompt\n\n선택된 디자인의 모든 텍스트 레이어에 현실적인 한국어 콘텐츠를 자동으로 생성합니다. 이름, 주소, 제품 설명 등 디자인 맥락에 맞는 placeholder 콘텐츠를 포함합니다.\n\n# How to Use\n\n1. 콘텐츠를 채우고 싶은 프레임이나 컴포넌트를 선택하세요\n2. 이 프롬프트를 실행하세요\n3. 시스템이 자동으로 텍스트 레이어를 맥락에 맞는 콘텐츠로 채웁니다",
		},
		{
			Slug:     "smart-layout-optimization",
			Title:    "Smart layout optimization",
			Category: "vibe-design",
			Language: "English",
			Tags:     []string{"layout", "optimization", "spacing", "alignment"},
			Content:  "# Prompt\n\nOptimize layout spacing and alignment for better visual hierarchy and user experience.\n\n# How to Use\n\n1. Select frames to optimize\n2. Run this prompt\n3. Review the optimized layout",
		},
		{
			Slug:     "accessibility-checker",
			Title:    "Accessibility compliance checker",
			Category: "annotation",
			Language: "English",
			Tags:     []string{"accessibility", "a11y", "compliance", "WCAG"},
			Content:  "# Prompt\n\nCheck and improve accessibility compliance for your design elements.\n\n# How to Use\n\n1. Select elements to check\n2. Run this prompt\n3. Review accessibility suggestions",
		},
		{
			Slug:     "responsive-breakpoints",
			Title:    "Generate responsive breakpoints",
			Category: "overrides",
			Language: "English",
			Tags:     []string{"responsive", "breakpoints", "mobile", "tablet"},
			Content:  "# Prompt\n\nAutomatically generate responsive variants for different screen sizes.\n\n# How to Use\n\n1. Select your base design\n2. Run this prompt\n3. Review generated breakpoints",
		},
		{
			Slug:     "user-flow-diagram",
			Title:    "Create user flow diagrams",
			Category: "connectors",
			Language: "English",
			Tags:     []string{"user flow", "diagram", "wireframe", "ux"},
			Content:  "# Prompt\n\nGenerate comprehensive user flow diagrams from your design screens.\n\n# How to Use\n\n1. Select screen frames\n2. Run this prompt\n3. Review generated flow diagram",
		},
		{
			Slug:     "chinese-localization",
			Title:    "中文本地化内容生成",
			Category: "auto-populate",
			Language: "中文",
			Tags:     []string{"中文", "本地化", "内容", "自动化"},
			Content:  "# Prompt\n\n为所选设计的所有文本图层自动生成真实的中文内容。包括姓名、地址、产品描述和其他与设计上下文匹配的相关占位符内容。\n\n# How to Use\n\n1. 选择要填充的框架或组件\n2. 运行此提示\n3. 系统将自动用上下文内容填充文本图层",
		},
		{
			Slug:     "brand-consistency-check",
			Title:    "Brand consistency checker",
			Category: "vibe-design",
			Language: "English",
			Tags:     []string{"brand", "consistency", "colors", "typography"},
			Content:  "# Prompt\n\nEnsure brand consistency across all design elements and components.\n\n# How to Use\n\n1. Select design elements\n2. Run this prompt\n3. Review brand compliance report",
		},
		{
			Slug:     "interactive-prototype",
			Title:    "Enhanced interactive prototypes",
			Category: "connectors",
			Language: "English",
			Tags:     []string{"prototype", "interactive", "animation", "transitions"},
			Content:  "# Prompt\n\nCreate enhanced interactive prototypes with smooth transitions and animations.\n\n# How to Use\n\n1. Select screens to connect\n2. Run this prompt\n3. Review prototype interactions",
		},
		{
			Slug:     "design-tokens-sync",
			Title:    "Design tokens synchronization",
			Category: "overrides",
			Language: "English",
			Tags:     []string{"design tokens", "sync", "variables", "consistency"},
			Content:  "# Prompt\n\nSynchronize design tokens across all components and instances.\n\n# How to Use\n\n1. Select components to sync\n2. Run this prompt\n3. Review token updates",
		},
		{
			Slug:     "content-strategy-analysis",
			Title:    "Content strategy analysis",
			Category: "annotation",
			Language: "English",
			Tags:     []string{"content strategy", "analysis", "ux writing", "information"},
			Content:  "# Prompt\n\nAnalyze and improve content strategy for better user experience.\n\n# How to Use\n\n1. Select content areas\n2. Run this prompt\n3. Review content recommendations",
		},
	}
}
