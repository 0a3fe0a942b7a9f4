// Package sql предоставляет реализацию репозиториев пользователей и коротких ссылок
// поверх gorm (sqlite/postgres).
//
// Все методы репозиториев преобразуют ошибки gorm в общие ошибки уровня репозитория
// с помощью convertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
