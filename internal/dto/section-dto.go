package dto

type SectionNameDTO struct {
	Name string `json:"name" validate:"required,max=100"`
}

type DeleteSectionDTO struct {
	Confirm string `json:"confirm" validate:"required"`
}

type SectionDTO struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}
