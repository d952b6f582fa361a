package request

type CreateStrategyRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	ImageReferences []string `json:"imageReferences,omitempty"`
}

type UpdateStrategyRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	ImageReferences []string `json:"imageReferences,omitempty"`
}
