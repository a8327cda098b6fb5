package implementation

import (
	"context"
	"errors"

	"bookshelf-be/internal/apperr"
	"bookshelf-be/internal/mapper"
	"bookshelf-be/internal/repository/session"
	"bookshelf-be/internal/repository/specification"

	"gorm.io/gorm"
)

// GormRepository is the generic GORM-backed repository. M is the persistence
// model, E the domain entity; a Mapper bridges the two. All instances bound
// to the same unit of work share one session, so staged writes from any of
// them commit together.
type GormRepository[M any, E any] struct {
	sess   *session.Session
	mapper mapper.Mapper[M, E]
}

func NewGormRepository[M any, E any](sess *session.Session, m mapper.Mapper[M, E]) *GormRepository[M, E] {
	return &GormRepository[M, E]{
		sess:   sess,
		mapper: m,
	}
}

func (r *GormRepository[M, E]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GormRepository[M, E]) GetByID(ctx context.Context, id uint) (*E, error) {
	var m M
	if err := r.sess.Handle().WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Infrastructure("repository.GetByID", err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GormRepository[M, E]) Find(ctx context.Context, specs ...specification.Specification) (*E, error) {
	var m M
	query := r.applySpecifications(r.sess.Handle().WithContext(ctx), specs...)
	// First orders by ascending primary key, which is the documented
	// tie-break for "first match".
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Infrastructure("repository.Find", err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GormRepository[M, E]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	var models []*M
	query := r.applySpecifications(r.sess.Handle().WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, apperr.Infrastructure("repository.FindAll", err)
	}
	entities := make([]*E, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *GormRepository[M, E]) GetAll(ctx context.Context) ([]*E, error) {
	return r.FindAll(ctx)
}

func (r *GormRepository[M, E]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.sess.Handle().WithContext(ctx).Model(new(M)), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, apperr.Infrastructure("repository.Count", err)
	}
	return count, nil
}

func (r *GormRepository[M, E]) Create(ctx context.Context, e *E) error {
	m := r.mapper.ToModel(e)
	res := r.sess.Handle().WithContext(ctx).Create(m)
	r.sess.RecordWrite(res.RowsAffected, res.Error)
	if res.Error != nil {
		return apperr.Persistence("repository.Create", res.Error)
	}
	*e = *r.mapper.ToEntity(m)
	return nil
}

func (r *GormRepository[M, E]) Update(ctx context.Context, e *E) error {
	m := r.mapper.ToModel(e)
	res := r.sess.Handle().WithContext(ctx).Save(m)
	r.sess.RecordWrite(res.RowsAffected, res.Error)
	if res.Error != nil {
		return apperr.Persistence("repository.Update", res.Error)
	}
	*e = *r.mapper.ToEntity(m)
	return nil
}

func (r *GormRepository[M, E]) Delete(ctx context.Context, id uint) error {
	res := r.sess.Handle().WithContext(ctx).Delete(new(M), id)
	r.sess.RecordWrite(res.RowsAffected, res.Error)
	if res.Error != nil {
		return apperr.Persistence("repository.Delete", res.Error)
	}
	return nil
}
