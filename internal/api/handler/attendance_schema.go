package handler

import "time"

type entryRequest struct {
	UserID       string    `json:"user_id"       validate:"required"`
	Kind         string    `json:"type"          validate:"required,oneof=check-in check-out"`
	Time         time.Time `json:"time"          validate:"required"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	LocationCode string    `json:"location_code" validate:"required"`
}

type addLocationRequest struct {
	Code string `json:"code" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}
