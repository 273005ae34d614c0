package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/locauto/locauto-go/internal/model"
)

// MySQLStore persists vehicles in the veiculos table. Every operation is a
// single statement; atomicity of individual rows is delegated to the
// database.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore creates a new MySQLStore.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Bootstrap creates the veiculos table if it does not exist yet.
func (s *MySQLStore) Bootstrap(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS veiculos (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			nome VARCHAR(100) NOT NULL,
			marca VARCHAR(50) NOT NULL,
			ano INT NOT NULL,
			valor_diaria DECIMAL(10, 2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'disponível',
			imagem_url TEXT NOT NULL,
			descricao TEXT,
			caracteristicas TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

const vehicleColumns = `id, nome, marca, ano, valor_diaria, status, imagem_url, descricao, caracteristicas, created_at`

func (s *MySQLStore) List(ctx context.Context) ([]model.Vehicle, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+vehicleColumns+` FROM veiculos ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	vehicles := []model.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows.Scan)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return vehicles, nil
}

func (s *MySQLStore) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM veiculos WHERE id = ?`, id)

	v, err := scanVehicle(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *MySQLStore) Create(ctx context.Context, v *model.Vehicle) error {
	caracteristicas, err := encodeCaracteristicas(v.Caracteristicas)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO veiculos (nome, marca, ano, valor_diaria, status, imagem_url, descricao, caracteristicas, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Nome, v.Marca, v.Ano, v.ValorDiaria, v.Status, v.ImagemURL,
		nullableString(v.Descricao), caracteristicas, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	v.ID = id
	return nil
}

func (s *MySQLStore) Update(ctx context.Context, v *model.Vehicle) error {
	caracteristicas, err := encodeCaracteristicas(v.Caracteristicas)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE veiculos
		SET nome = ?, marca = ?, ano = ?, valor_diaria = ?, status = ?, imagem_url = ?, descricao = ?, caracteristicas = ?
		WHERE id = ?`,
		v.Nome, v.Marca, v.Ano, v.ValorDiaria, v.Status, v.ImagemURL,
		nullableString(v.Descricao), caracteristicas, v.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	if affected == 0 {
		// The row may exist with identical values; distinguish via Get.
		if _, err := s.Get(ctx, v.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM veiculos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return nil
}

// scanVehicle reads one row into a Vehicle, decoding the nullable columns.
func scanVehicle(scan func(dest ...any) error) (*model.Vehicle, error) {
	var (
		v               model.Vehicle
		descricao       sql.NullString
		caracteristicas sql.NullString
	)

	err := scan(&v.ID, &v.Nome, &v.Marca, &v.Ano, &v.ValorDiaria, &v.Status,
		&v.ImagemURL, &descricao, &caracteristicas, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreCorrupt, err)
	}

	v.Descricao = descricao.String
	if caracteristicas.Valid && caracteristicas.String != "" {
		if err := json.Unmarshal([]byte(caracteristicas.String), &v.Caracteristicas); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreCorrupt, err)
		}
	}

	return &v, nil
}

// encodeCaracteristicas stores the feature list as a JSON text column;
// an empty list is stored as NULL so the fallback list applies on read.
func encodeCaracteristicas(features []string) (any, error) {
	if len(features) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(features)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
