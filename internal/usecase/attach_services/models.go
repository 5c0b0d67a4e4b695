package attach_services

// Request модель запроса на добавление услуг в смену
type Request struct {
	ShiftID    int64
	ServiceIDs []int64
}

// Response модель ответа
type Response struct {
	ShiftID         int64
	ServiceIDs      []int64 // Итоговый набор услуг смены
	DerivedShiftIDs []int64 // Смены, созданные разворачиванием (только при первом наполнении набора)
}
