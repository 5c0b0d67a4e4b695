package create_shift

import (
	"time"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
)

// Request модель запроса на создание смены
type Request struct {
	View        domain.View // Проекция, через которую создаётся смена (archived запрещена)
	ProviderID  *int64      // Исполнитель (опционально)
	StartAt     time.Time   // Начало смены
	EndAt       time.Time   // Конец смены
	Recurrence  string      // Правило повторения: none, weekly, biweekly, monthly, bimonthly
	RepeatCount int         // Число повторов
	IsAvailable *bool       // Доступна ли смена для записи (по умолчанию true)
	ServiceIDs  []int64     // Набор услуг смены
}

// Response модель ответа с созданной сменой
type Response struct {
	Shift           *domain.Shift
	DerivedShiftIDs []int64 // ID смен, созданных разворачиванием правила повторения
}
