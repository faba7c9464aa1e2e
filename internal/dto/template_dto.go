package dto

type TemplateResponse struct {
	Id       string  `json:"id"`
	DoctorId *string `json:"doctor_id"`
	Title    string  `json:"title"`
	Type     string  `json:"type"`
}

type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}
