package entity

import "time"

// RoleStaff es el rol asignado cuando el registro no indica ninguno.
const RoleStaff = "staff"

// User representa una cuenta del personal que opera el inventario.
type User struct {
	ID           int64
	Email        string    // normalizado: sin espacios y en minúsculas
	PasswordHash string    // bcrypt hash, nunca se expone hacia afuera
	Role         string
	CreatedAt    time.Time
}
