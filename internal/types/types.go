// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS.
// Нулевое значение никогда не выдаётся и означает «нет сущности».
type EntityID uint64
