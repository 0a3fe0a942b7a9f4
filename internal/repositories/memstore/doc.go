// Package memstore предоставляет реализацию репозиториев пользователей и коротких
// ссылок для in-memory хранилища. Используется в тестах и при локальном запуске
// без базы данных.
//
// Все методы репозиториев преобразуют внутренние ошибки хранилища в общие ошибки
// уровня репозитория с помощью convertErrorType:
//   - memory.ErrDuplicateKey -> repositories.ErrDuplicateKey
//   - memory.ErrNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package memstore
