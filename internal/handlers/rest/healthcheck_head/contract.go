package healthcheck_head

// ShutdownFlag выставляется при получении сигнала остановки (*atomic.Bool).
type ShutdownFlag interface {
	Load() bool
}
