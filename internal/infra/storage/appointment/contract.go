package appointment

import (
	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
