package fetch

// OnJoin - подменяет хук присоединения к синхронизации
func OnJoin(svc Service, fn func()) {
	svc.(*fetchService).joined = fn
}
