package model

import "ecomarket/internal/domain/entity"

// EnvironmentalActionModel is the persisted shape of an environmental action.
type EnvironmentalActionModel struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	ActionType string `json:"actionType"`
	Quantity   int    `json:"quantity"`
	CreatedAt  Time   `json:"createdAt"`
}

func fromEnvironmentalActionDomain(data *entity.EnvironmentalAction) *EnvironmentalActionModel {
	return &EnvironmentalActionModel{
		ID:         data.ID,
		UserID:     data.UserID,
		ActionType: string(data.ActionType),
		Quantity:   data.Quantity,
		CreatedAt:  NewTime(data.CreatedAt),
	}
}

func toEnvironmentalActionDomain(data *EnvironmentalActionModel) *entity.EnvironmentalAction {
	return &entity.EnvironmentalAction{
		ID:         data.ID,
		UserID:     data.UserID,
		ActionType: entity.ActionType(data.ActionType),
		Quantity:   data.Quantity,
		CreatedAt:  data.CreatedAt.Time,
	}
}
