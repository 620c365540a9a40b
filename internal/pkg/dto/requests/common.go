package requests

type QueryParams struct {
	Page     int
	PageSize int
	Search   string
}
