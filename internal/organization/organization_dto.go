package organization

type CreateSectionRequest struct {
	Name        string   `json:"name" binding:"required,max=120"`
	SubSections []string `json:"sub_sections" binding:"omitempty,dive,required,max=120"`
}

type CreateSubSectionRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}

type CreateShiftRequest struct {
	Name      string `json:"name" binding:"required,max=60"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type SubSectionResponse struct {
	ID          string `json:"id"`
	SectionID   string `json:"section_id"`
	SectionName string `json:"section_name,omitempty"`
	Name        string `json:"name"`
}

type SectionResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	SubSections []SubSectionResponse `json:"sub_sections"`
}

type ShiftResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Overnight bool   `json:"overnight"`
}

type OptionsResponse struct {
	Sections []SectionResponse `json:"sections"`
	Shifts   []ShiftResponse   `json:"shifts"`
}
