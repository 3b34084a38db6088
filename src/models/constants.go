package models

// InquiryStatus tracks where a lead is in the sales pipeline
type InquiryStatus string

const (
	InquiryStatusNew        InquiryStatus = "new"
	InquiryStatusContacted  InquiryStatus = "contacted"
	InquiryStatusInProgress InquiryStatus = "in-progress"
	InquiryStatusConverted  InquiryStatus = "converted"
	InquiryStatusClosed     InquiryStatus = "closed"
)

// InquiryStatuses lists every status in pipeline order
var InquiryStatuses = []InquiryStatus{
	InquiryStatusNew,
	InquiryStatusContacted,
	InquiryStatusInProgress,
	InquiryStatusConverted,
	InquiryStatusClosed,
}

// SourcePage identifies the page a contact form was submitted from
type SourcePage string

const (
	SourcePageHome      SourcePage = "home"
	SourcePageServices  SourcePage = "services"
	SourcePageSolutions SourcePage = "solutions"
	SourcePagePricing   SourcePage = "pricing"
	SourcePageAbout     SourcePage = "about"
	SourcePageContact   SourcePage = "contact"
)

// Inquiry list sort fields, mapped to storage columns by the repository
const (
	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"
	SortByName      = "name"
	SortByEmail     = "email"
	SortByStatus    = "status"
)

// Pagination is returned alongside list responses
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count as ceil(total/limit)
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
