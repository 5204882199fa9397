package customer

import "github.com/JeffreyRobertLynch/customer-scheduling-management-system/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
