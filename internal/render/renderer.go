package render

import "context"

type Renderer interface {
	RenderHome(ctx context.Context, page HomePage) ([]byte, error)
	RenderPrompt(ctx context.Context, page PromptPage) ([]byte, error)
	RenderTags(ctx context.Context, page TagsPage) ([]byte, error)
	RenderCategories(ctx context.Context, page CategoriesPage) ([]byte, error)
	RenderNotFound(ctx context.Context, page NotFoundPage) ([]byte, error)
	RenderContributors(ctx context.Context, frag ContributorsFragment) ([]byte, error)
}
