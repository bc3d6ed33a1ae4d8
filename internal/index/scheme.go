package index

var (
	bMeta    = []byte("meta")     // slug -> entry json
	bOrder   = []byte("order")    // seq(8) -> slug
	bIdxTag  = []byte("idx_tag")  // tag -> sub-bucket of seq(8)+slug
	bIdxCat  = []byte("idx_cat")  // category -> sub-bucket
	bIdxLang = []byte("idx_lang") // language -> sub-bucket
	bBuild   = []byte("build")    // fingerprint fields
)

var allBuckets = [][]byte{bMeta, bOrder, bIdxTag, bIdxCat, bIdxLang}
