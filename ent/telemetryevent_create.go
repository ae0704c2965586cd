// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/assessly/ent/telemetryevent"
)

// TelemetryEventCreate is the builder for creating a TelemetryEvent entity.
type TelemetryEventCreate struct {
	config
	mutation *TelemetryEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TelemetryEventCreate) SetSequence(v int64) *TelemetryEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TelemetryEventCreate) SetTimestamp(v time.Time) *TelemetryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableTimestamp(v *time.Time) *TelemetryEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *TelemetryEventCreate) SetAssessmentID(v string) *TelemetryEventCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableAssessmentID(v *string) *TelemetryEventCreate {
	if v != nil {
		_c.SetAssessmentID(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *TelemetryEventCreate) SetLearnerID(v string) *TelemetryEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableLearnerID(v *string) *TelemetryEventCreate {
	if v != nil {
		_c.SetLearnerID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *TelemetryEventCreate) SetEventType(v string) *TelemetryEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetExerciseID sets the "exercise_id" field.
func (_c *TelemetryEventCreate) SetExerciseID(v string) *TelemetryEventCreate {
	_c.mutation.SetExerciseID(v)
	return _c
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableExerciseID(v *string) *TelemetryEventCreate {
	if v != nil {
		_c.SetExerciseID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TelemetryEventCreate) SetSessionID(v string) *TelemetryEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableSessionID(v *string) *TelemetryEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the TelemetryEventMutation object of the builder.
func (_c *TelemetryEventCreate) Mutation() *TelemetryEventMutation {
	return _c.mutation
}

// Save creates the TelemetryEvent in the database.
func (_c *TelemetryEventCreate) Save(ctx context.Context) (*TelemetryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TelemetryEventCreate) SaveX(ctx context.Context) *TelemetryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TelemetryEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := telemetryevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		v := telemetryevent.DefaultAssessmentID
		_c.mutation.SetAssessmentID(v)
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		v := telemetryevent.DefaultLearnerID
		_c.mutation.SetLearnerID(v)
	}
	if _, ok := _c.mutation.ExerciseID(); !ok {
		v := telemetryevent.DefaultExerciseID
		_c.mutation.SetExerciseID(v)
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		v := telemetryevent.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TelemetryEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TelemetryEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TelemetryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "TelemetryEvent.assessment_id"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "TelemetryEvent.learner_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "TelemetryEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := telemetryevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExerciseID(); !ok {
		return &ValidationError{Name: "exercise_id", err: errors.New(`ent: missing required field "TelemetryEvent.exercise_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TelemetryEvent.session_id"`)}
	}
	return nil
}

func (_c *TelemetryEventCreate) sqlSave(ctx context.Context) (*TelemetryEvent, error) {
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

func (_c *TelemetryEventCreate) createSpec() (*TelemetryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TelemetryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(telemetryevent.Table, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(telemetryevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(telemetryevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(telemetryevent.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(telemetryevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(telemetryevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ExerciseID(); ok {
		_spec.SetField(telemetryevent.FieldExerciseID, field.TypeString, value)
		_node.ExerciseID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(telemetryevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// TelemetryEventCreateBulk is the builder for creating many TelemetryEvent entities in bulk.
type TelemetryEventCreateBulk struct {
	config
	err      error
	builders []*TelemetryEventCreate
}

// Save creates the TelemetryEvent entities in the database.
func (_c *TelemetryEventCreateBulk) Save(ctx context.Context) ([]*TelemetryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TelemetryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TelemetryEventMutation)
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
func (_c *TelemetryEventCreateBulk) SaveX(ctx context.Context) []*TelemetryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
