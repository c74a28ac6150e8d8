package hubspot

// Properties is one tax object's property map in the shape the batch-create
// endpoint expects. Values are strings or numbers; empty values must be
// stripped before submission (see importer.Mapping).
type Properties map[string]interface{}

// batchInput wraps one property map for the batch-create request body.
type batchInput struct {
	Properties Properties `json:"properties"`
}

// batchCreateRequest is the body of POST /crm/v3/objects/taxes/batch/create.
type batchCreateRequest struct {
	Inputs []batchInput `json:"inputs"`
}

// TaxObject is one tax record as returned by the CRM. Read-only to taxsync.
type TaxObject struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// BatchError is one structured per-item error inside an otherwise successful
// batch response.
type BatchError struct {
	Status   string `json:"status"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// BatchResponse is the parsed result of one batch-create call.
type BatchResponse struct {
	Status  string       `json:"status"`
	Results []TaxObject  `json:"results"`
	Errors  []BatchError `json:"errors,omitempty"`
}

// TaxPage is one page of the paged tax listing.
type TaxPage struct {
	Results []TaxObject `json:"results"`
	Paging  *Paging     `json:"paging,omitempty"`
}

// Paging carries the cursor for the next page, when one exists.
type Paging struct {
	Next *PagingNext `json:"next,omitempty"`
}

// PagingNext holds the opaque "after" cursor token.
type PagingNext struct {
	After string `json:"after"`
}

// propertySchema is one entry of GET /crm/v3/properties/taxes.
type propertySchema struct {
	Name string `json:"name"`
}

// propertiesResponse is the body of GET /crm/v3/properties/taxes.
type propertiesResponse struct {
	Results []propertySchema `json:"results"`
}
