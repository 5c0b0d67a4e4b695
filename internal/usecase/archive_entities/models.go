package archive_entities

// Request модель запроса на архивацию
type Request struct {
	EntityType string  // shift или reservation
	IDs        []int64 // ID записей
}

// Response модель ответа
type Response struct {
	EntityType string
	Requested  int     // Сколько ID было передано
	Archived   []int64 // ID, которые перешли в архив этим вызовом
}
