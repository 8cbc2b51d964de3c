package dto

import (
	"podcast-generation-service/application/flows"
)

type FlowDescriptionPayload struct {
	FlowType            string   `json:"flow_type"`
	Category            string   `json:"category"`
	Description         string   `json:"description"`
	RequiredCredentials []string `json:"required_credentials"`
	OutputFormat        string   `json:"output_format"`
}

type FlowListResponse struct {
	Flows []FlowDescriptionPayload `json:"flows"`
}

func NewFlowListResponse(descriptions []flows.FlowDescription) FlowListResponse {
	payload := make([]FlowDescriptionPayload, 0, len(descriptions))
	for _, description := range descriptions {
		payload = append(payload, FlowDescriptionPayload{
			FlowType:            description.FlowType,
			Category:            description.Category,
			Description:         description.Info.Description,
			RequiredCredentials: description.Info.RequiredCredentials,
			OutputFormat:        description.Info.OutputFormat,
		})
	}
	return FlowListResponse{Flows: payload}
}
