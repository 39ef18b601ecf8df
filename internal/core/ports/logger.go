package ports

//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks

// Logger defines the console logging contract.
//
// Warnings are advisory: they are printed but never alter the exit code.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
