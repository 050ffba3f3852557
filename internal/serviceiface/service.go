package serviceiface

// Service is the unit managed by the app manager.
type Service interface {
	Name() string
	Start() error
	Stop() error
}
