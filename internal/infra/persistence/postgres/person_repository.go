// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"persons/internal/domain/entity"
	domainerrors "persons/internal/domain/errors"
	"persons/internal/domain/repository"
	"persons/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// personRepository implements the domain.PersonRepository interface using GORM.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
// It returns the repository as a domain.PersonRepository interface, adhering to dependency inversion.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

// Create persists a new person row, including any resolved address fields.
// The store assigns the ID and both timestamps; they are copied back onto
// the entity.
func (repo *personRepository) Create(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)

	if err := repo.db.WithContext(ctx).Create(personM).Error; err != nil {
		// The table's check constraints mirror the validator; tripping one
		// means a payload slipped past validation.
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("store rejected out-of-range value")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPersonCreationFailed.WrapMessage("missing required person information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create person")
	}

	person.ID = personM.ID
	person.CreatedAt = personM.CreatedAt
	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// FindByID retrieves a single person by their unique ID.
func (repo *personRepository) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	var personM model.PersonModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&personM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by id")
	}

	return toPersonDomain(&personM), nil
}

// List returns a page of persons ordered by creation time descending plus
// the total row count. The ID tiebreak keeps the order stable for rows
// created in the same instant.
func (repo *personRepository) List(ctx context.Context, limit, offset int) ([]*entity.Person, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.PersonModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count persons")
	}

	var personModels []*model.PersonModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&personModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list persons")
	}

	persons := make([]*entity.Person, 0, len(personModels))
	for _, personM := range personModels {
		persons = append(persons, toPersonDomain(personM))
	}

	return persons, total, nil
}

// Update applies a typed patch, touching only the fields present in it.
// An empty patch returns the current row unchanged.
func (repo *personRepository) Update(ctx context.Context, id int64, patch repository.PersonPatch) (*entity.Person, error) {
	updates := patchUpdates(patch)
	if len(updates) == 0 {
		return repo.FindByID(ctx, id)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("store rejected out-of-range value")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update person")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPersonNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a person by ID, reporting whether a row existed.
func (repo *personRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PersonModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete person")
	}

	return result.RowsAffected > 0, nil
}

// patchUpdates builds the column assignment set from a typed patch.
// GORM refreshes updated_at alongside any real mutation. When the patch
// carries a CEP, the whole address group is written together, clearing the
// components the lookup did not provide.
func patchUpdates(patch repository.PersonPatch) map[string]any {
	updates := make(map[string]any)

	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}
	if patch.Age != nil {
		updates["age"] = *patch.Age
	}
	if patch.HeightCM != nil {
		updates["height_cm"] = *patch.HeightCM
	}
	if patch.WeightKG != nil {
		updates["weight_kg"] = *patch.WeightKG
	}

	if patch.CEP != nil {
		updates["cep"] = *patch.CEP
		updates["street"] = patch.Street
		updates["neighborhood"] = patch.Neighborhood
		updates["city"] = patch.City
		updates["state"] = patch.State
	}

	return updates
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	return &entity.Person{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Age:          data.Age,
		HeightCM:     data.HeightCM,
		WeightKG:     data.WeightKG,
		CEP:          data.CEP,
		Street:       data.Street,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		State:        data.State,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPersonDomain(data *entity.Person) *model.PersonModel {
	if data == nil {
		return nil
	}

	return &model.PersonModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Age:          data.Age,
		HeightCM:     data.HeightCM,
		WeightKG:     data.WeightKG,
		CEP:          data.CEP,
		Street:       data.Street,
		Neighborhood: data.Neighborhood,
		City:         data.City,
		State:        data.State,
	}
}
