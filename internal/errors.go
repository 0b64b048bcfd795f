package internal

import (
	"fmt"
	"time"
)

type EntityNotFound struct {
	Id   string
	Type string
}

type UnknownAlertType struct {
	Id string
}

type UnknownBackend struct {
	Id string
}

type InvalidCatalog struct {
	Reason string
}

func (e EntityNotFound) Error() string {
	return fmt.Sprintf("entity %v of type %v not found", e.Id, e.Type)
}

func (e UnknownAlertType) Error() string {
	return fmt.Sprintf("alert type %v is not registered", e.Id)
}

func (e UnknownBackend) Error() string {
	return fmt.Sprintf("alert backend %v is not registered", e.Id)
}

func (e InvalidCatalog) Error() string {
	return fmt.Sprintf("invalid alert catalog - %v", e.Reason)
}

type InvalidSchedule struct {
	When time.Time
}

func (e InvalidSchedule) Error() string {
	return fmt.Sprintf("alert schedule %v is out of range", e.When.Format(time.RFC3339))
}
