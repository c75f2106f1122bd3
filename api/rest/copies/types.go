package copies

import (
	"codeberg.org/adforge/server/adforge/copies"
	"codeberg.org/adforge/server/api/rest/pagination"
)

const (
	// default page size for copy listings
	defaultListLimit = 20

	// maximum page size for copy listings
	maxListLimit = 50
)

// Response represents a page of stored ad copies, newest first
type Response struct {
	Copies     []copies.Copy   `json:"copies"`
	Pagination pagination.Meta `json:"pagination"`
}
