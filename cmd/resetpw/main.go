// resetpw restablece la contraseña de un usuario directamente en la base de datos.
// Útil cuando un administrador queda bloqueado fuera del sistema.
//
// Uso: go run ./cmd/resetpw -email admin@estudio.com -password nuevaClave123
// Lee la conexión a PostgreSQL de las mismas variables de entorno que el API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/studio-pro/pkg/config"
)

func main() {
	email := flag.String("email", "", "email del usuario")
	password := flag.String("password", "", "nueva contraseña (mínimo 8 caracteres)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Uso: resetpw -email <email> -password <contraseña>")
		os.Exit(1)
	}
	if len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "La contraseña debe tener al menos 8 caracteres")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.DB.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	tag, err := conn.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE lower(email) = lower($2)`,
		string(hash), *email,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Actualizar contraseña: %v\n", err)
		os.Exit(1)
	}
	if tag.RowsAffected() == 0 {
		fmt.Fprintf(os.Stderr, "No existe un usuario con email %s\n", *email)
		os.Exit(1)
	}

	fmt.Printf("Contraseña actualizada para %s\n", *email)
}
