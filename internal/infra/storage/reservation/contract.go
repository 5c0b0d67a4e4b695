package reservation

import "github.com/m04kA/SMC-ShiftService/pkg/dbmetrics"

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
