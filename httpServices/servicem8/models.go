package servicem8

// CompanyData is the payload for creating a company record.
type CompanyData struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// JobData is the payload for creating a job record.
type JobData struct {
	Status      string `json:"status"`
	Date        string `json:"date"`
	CompanyUUID string `json:"company_uuid"`
}

// Response is the shape ServiceM8 returns for create calls.
type Response struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}
