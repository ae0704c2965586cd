// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/assessly/ent/submissionevent"
)

// SubmissionEventCreate is the builder for creating a SubmissionEvent entity.
type SubmissionEventCreate struct {
	config
	mutation *SubmissionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SubmissionEventCreate) SetSequence(v int64) *SubmissionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SubmissionEventCreate) SetTimestamp(v time.Time) *SubmissionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableTimestamp(v *time.Time) *SubmissionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *SubmissionEventCreate) SetAssessmentID(v string) *SubmissionEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableAssessmentID(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetAssessmentID(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *SubmissionEventCreate) SetLearnerID(v string) *SubmissionEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableLearnerID(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetLearnerID(*v)
	}
	return _c
}

// SetExerciseID sets the "exercise_id" field.
func (_c *SubmissionEventCreate) SetExerciseID(v string) *SubmissionEventCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetStep sets the "step" field.
func (_c *SubmissionEventCreate) SetStep(v int) *SubmissionEventCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubmissionEventCreate) SetStatus(v string) *SubmissionEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableStatus(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAccepted sets the "accepted" field.
func (_c *SubmissionEventCreate) SetAccepted(v bool) *SubmissionEventCreate {
	_c.mutation.SetAccepted(v)
	return _c
}

// SetNumAttempts sets the "num_attempts" field.
func (_c *SubmissionEventCreate) SetNumAttempts(v int) *SubmissionEventCreate {
	_c.mutation.SetNumAttempts(v)
	return _c
}

// SetNillableNumAttempts sets the "num_attempts" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableNumAttempts(v *int) *SubmissionEventCreate {
	if v != nil {
		_c.SetNumAttempts(*v)
	}
	return _c
}

// SetFinalGrade sets the "final_grade" field.
func (_c *SubmissionEventCreate) SetFinalGrade(v float64) *SubmissionEventCreate {
	_c.mutation.SetFinalGrade(v)
	return _c
}

// SetNillableFinalGrade sets the "final_grade" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableFinalGrade(v *float64) *SubmissionEventCreate {
	if v != nil {
		_c.SetFinalGrade(*v)
	}
	return _c
}

// SetSubmittedAnswer sets the "submitted_answer" field.
func (_c *SubmissionEventCreate) SetSubmittedAnswer(v map[string]interface{}) *SubmissionEventCreate {
	_c.mutation.SetSubmittedAnswer(v)
	return _c
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_c *SubmissionEventCreate) Mutation() *SubmissionEventMutation {
	return _c.mutation
}

// Save creates the SubmissionEvent in the database.
func (_c *SubmissionEventCreate) Save(ctx context.Context) (*SubmissionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionEventCreate) SaveX(ctx context.Context) *SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := submissionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		v := submissionevent.DefaultAssessmentID
		_c.mutation.SetAssessmentID(v)
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		v := submissionevent.DefaultLearnerID
		_c.mutation.SetLearnerID(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := submissionevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.NumAttempts(); !ok {
		v := submissionevent.DefaultNumAttempts
		_c.mutation.SetNumAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SubmissionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SubmissionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "SubmissionEvent.assessment_id"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "SubmissionEvent.learner_id"`)}
	}
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "SubmissionEvent.exercise_id"`)}
	}
	if v, ok := _c.mutation.ExerciseID(); ok {
		if err := submissionevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.exercise_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "SubmissionEvent.step"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SubmissionEvent.status"`)}
	}
	if _, ok := _c.mutation.Accepted(); !ok {
		return &ValidationError{Name: "accepted", err: errors.New(`ent: missing required field "SubmissionEvent.accepted"`)}
	}
	if _, ok := _c.mutation.NumAttempts(); !ok {
		return &ValidationError{Name: "num_attempts", err: errors.New(`ent: missing required field "SubmissionEvent.num_attempts"`)}
	}
	return nil
}

func (_c *SubmissionEventCreate) sqlSave(ctx context.Context) (*SubmissionEvent, error) {
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

func (_c *SubmissionEventCreate) createSpec() (*SubmissionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SubmissionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submissionevent.Table, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(submissionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(submissionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(submissionevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(submissionevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(submissionevent.FieldExerciseID, field.TypeString, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(submissionevent.FieldStep, field.TypeInt, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submissionevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Accepted(); ok {
		_spec.SetField(submissionevent.FieldAccepted, field.TypeBool, value)
		_node.Accepted = value
	}
	if value, ok := _c.mutation.NumAttempts(); ok {
		_spec.SetField(submissionevent.FieldNumAttempts, field.TypeInt, value)
		_node.NumAttempts = value
	}
	if value, ok := _c.mutation.FinalGrade(); ok {
		_spec.SetField(submissionevent.FieldFinalGrade, field.TypeFloat64, value)
		_node.FinalGrade = &value
	}
	if value, ok := _c.mutation.SubmittedAnswer(); ok {
		_spec.SetField(submissionevent.FieldSubmittedAnswer, field.TypeJSON, value)
		_node.SubmittedAnswer = value
	}
	return _node, _spec
}

// SubmissionEventCreateBulk is the builder for creating many SubmissionEvent entities in bulk.
type SubmissionEventCreateBulk struct {
	config
	err      error
	builders []*SubmissionEventCreate
}

// Save creates the SubmissionEvent entities in the database.
func (_c *SubmissionEventCreateBulk) Save(ctx context.Context) ([]*SubmissionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubmissionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionEventMutation)
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
func (_c *SubmissionEventCreateBulk) SaveX(ctx context.Context) []*SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
