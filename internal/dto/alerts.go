package dto

import "time"

type AlertUserReq struct {
	UserId *string `json:"userId" binding:"omitempty,min=1,max=256"`
	Email  string  `json:"email" binding:"omitempty,email"`
}

type RecipientsReq struct {
	AlertType string         `json:"alertType" binding:"required,max=120,alertid"`
	Users     []AlertUserReq `json:"users" binding:"max=1000,dive"`
}

type RecipientResp struct {
	UserId  *string `json:"userId"`
	Email   string  `json:"email,omitempty"`
	Backend string  `json:"backend"`
}

type RecipientsResp struct {
	AlertType  string          `json:"alertType"`
	Recipients []RecipientResp `json:"recipients"`
}

type AlertReq struct {
	UserId    string     `json:"userId" binding:"required,min=1,max=256"`
	AlertType string     `json:"alertType" binding:"required,max=120,alertid"`
	Backend   string     `json:"backend" binding:"required,max=120,alertid"`
	Title     string     `json:"title" binding:"required,max=120"`
	Body      string     `json:"body" binding:"required,max=1024"`
	When      *time.Time `json:"when"`
}

type CreateAlertsReq struct {
	Alerts []AlertReq `json:"alerts" binding:"required,min=1,max=256,dive"`
}

type AlertResp struct {
	Id        string     `json:"id"`
	UserId    string     `json:"userId"`
	AlertType string     `json:"alertType"`
	Backend   string     `json:"backend"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	When      time.Time  `json:"when"`
	IsSent    bool       `json:"isSent"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
}

type AlertsResp struct {
	Alerts []AlertResp `json:"alerts"`
}

type AlertUriParams struct {
	AlertId string `uri:"id" binding:"required,uuid"`
}
