// Package dto - JSON тела запросов и ответов REST API.
package dto

import "time"

type StatusResponse struct {
	Status string `json:"status"`
}

type CreatedResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type PingResponse struct {
	Message *string `json:"message"`
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// DimensionsRequest - габариты во входящем JSON, отсутствующее поле остается nil.
type DimensionsRequest struct {
	Width  *float64 `json:"width"`
	Length *float64 `json:"length"`
	Height *float64 `json:"height"`
}

type LoadCreate struct {
	Dimensions      *DimensionsRequest `json:"dimensions"`
	Payload         *float64           `json:"payload"`
	PickupAddress   *string            `json:"pickupAddress"`
	DeliveryAddress *string            `json:"deliveryAddress"`
}

// LoadUpdate - все поля необязательные, меняются только переданные.
type LoadUpdate LoadCreate

type LoadLog struct {
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

type Load struct {
	ID              string     `json:"_id"`
	AssignedTo      string     `json:"assigned_to"`
	CreatedBy       string     `json:"created_by"`
	Status          string     `json:"status"`
	State           string     `json:"state"`
	Logs            []LoadLog  `json:"logs"`
	Dimensions      Dimensions `json:"dimensions"`
	Payload         float64    `json:"payload"`
	CreatedAt       time.Time  `json:"created_at"`
	PickupAddress   string     `json:"pickup_address"`
	DeliveryAddress string     `json:"delivery_address"`
}

type LoadResponse struct {
	Status string `json:"status"`
	Load   Load   `json:"load"`
}

type LoadsResponse struct {
	Status string `json:"status"`
	Loads  []Load `json:"loads"`
}

type LoadPostResponse struct {
	Status     string  `json:"status"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}

type LoadStateResponse struct {
	Status string  `json:"status"`
	State  *string `json:"state,omitempty"`
}

type TruckCreate struct {
	Name *string `json:"name"`
	Type string  `json:"type"`
}

type TruckUpdate struct {
	Name string `json:"name"`
}

type Truck struct {
	ID         string     `json:"_id"`
	CreatedBy  string     `json:"created_by"`
	AssignedTo *string    `json:"assigned_to"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Status     string     `json:"status"`
	Dimensions Dimensions `json:"dimensions"`
	Payload    float64    `json:"payload"`
	CreatedAt  time.Time  `json:"created_at"`
}

type TruckResponse struct {
	Status string `json:"status"`
	Truck  Truck  `json:"truck"`
}

type TrucksResponse struct {
	Status string  `json:"status"`
	Trucks []Truck `json:"trucks"`
}
