// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/assessly/ent/progress"
	"github.com/abhisek/assessly/ent/schema"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *ProgressCreate) SetAssessmentID(v string) *ProgressCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *ProgressCreate) SetLearnerID(v string) *ProgressCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetStep sets the "step" field.
func (_c *ProgressCreate) SetStep(v int) *ProgressCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableStep(v *int) *ProgressCreate {
	if v != nil {
		_c.SetStep(*v)
	}
	return _c
}

// SetNumAttempts sets the "num_attempts" field.
func (_c *ProgressCreate) SetNumAttempts(v int) *ProgressCreate {
	_c.mutation.SetNumAttempts(v)
	return _c
}

// SetNillableNumAttempts sets the "num_attempts" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableNumAttempts(v *int) *ProgressCreate {
	if v != nil {
		_c.SetNumAttempts(*v)
	}
	return _c
}

// SetAttempted sets the "attempted" field.
func (_c *ProgressCreate) SetAttempted(v bool) *ProgressCreate {
	_c.mutation.SetAttempted(v)
	return _c
}

// SetNillableAttempted sets the "attempted" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableAttempted(v *bool) *ProgressCreate {
	if v != nil {
		_c.SetAttempted(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ProgressCreate) SetCompleted(v bool) *ProgressCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableCompleted(v *bool) *ProgressCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetResults sets the "results" field.
func (_c *ProgressCreate) SetResults(v []schema.StudentResult) *ProgressCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressCreate) SetUpdatedAt(v time.Time) *ProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressCreate) SetNillableUpdatedAt(v *time.Time) *ProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressMutation object of the builder.
func (_c *ProgressCreate) Mutation() *ProgressMutation {
	return _c.mutation
}

// Save creates the Progress in the database.
func (_c *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressCreate) defaults() {
	if _, ok := _c.mutation.Step(); !ok {
		v := progress.DefaultStep
		_c.mutation.SetStep(v)
	}
	if _, ok := _c.mutation.NumAttempts(); !ok {
		v := progress.DefaultNumAttempts
		_c.mutation.SetNumAttempts(v)
	}
	if _, ok := _c.mutation.Attempted(); !ok {
		v := progress.DefaultAttempted
		_c.mutation.SetAttempted(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := progress.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressCreate) check() error {
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "Progress.assessment_id"`)}
	}
	if v, ok := _c.mutation.AssessmentID(); ok {
		if err := progress.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "Progress.assessment_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Progress.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := progress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Progress.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "Progress.step"`)}
	}
	if _, ok := _c.mutation.NumAttempts(); !ok {
		return &ValidationError{Name: "num_attempts", err: errors.New(`ent: missing required field "Progress.num_attempts"`)}
	}
	if _, ok := _c.mutation.Attempted(); !ok {
		return &ValidationError{Name: "attempted", err: errors.New(`ent: missing required field "Progress.attempted"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Progress.completed"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Progress.updated_at"`)}
	}
	return nil
}

func (_c *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(progress.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(progress.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(progress.FieldStep, field.TypeInt, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.NumAttempts(); ok {
		_spec.SetField(progress.FieldNumAttempts, field.TypeInt, value)
		_node.NumAttempts = value
	}
	if value, ok := _c.mutation.Attempted(); ok {
		_spec.SetField(progress.FieldAttempted, field.TypeBool, value)
		_node.Attempted = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(progress.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (_c *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Progress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
