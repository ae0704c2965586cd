// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/assessly/ent/predicate"
	"github.com/abhisek/assessly/ent/progress"
	"github.com/abhisek/assessly/ent/schema"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStep sets the "step" field.
func (_u *ProgressUpdate) SetStep(v int) *ProgressUpdate {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableStep(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *ProgressUpdate) AddStep(v int) *ProgressUpdate {
	_u.mutation.AddStep(v)
	return _u
}

// SetNumAttempts sets the "num_attempts" field.
func (_u *ProgressUpdate) SetNumAttempts(v int) *ProgressUpdate {
	_u.mutation.ResetNumAttempts()
	_u.mutation.SetNumAttempts(v)
	return _u
}

// SetNillableNumAttempts sets the "num_attempts" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableNumAttempts(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetNumAttempts(*v)
	}
	return _u
}

// AddNumAttempts adds value to the "num_attempts" field.
func (_u *ProgressUpdate) AddNumAttempts(v int) *ProgressUpdate {
	_u.mutation.AddNumAttempts(v)
	return _u
}

// SetAttempted sets the "attempted" field.
func (_u *ProgressUpdate) SetAttempted(v bool) *ProgressUpdate {
	_u.mutation.SetAttempted(v)
	return _u
}

// SetNillableAttempted sets the "attempted" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableAttempted(v *bool) *ProgressUpdate {
	if v != nil {
		_u.SetAttempted(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressUpdate) SetCompleted(v bool) *ProgressUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCompleted(v *bool) *ProgressUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetResults sets the "results" field.
func (_u *ProgressUpdate) SetResults(v []schema.StudentResult) *ProgressUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *ProgressUpdate) AppendResults(v []schema.StudentResult) *ProgressUpdate {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *ProgressUpdate) ClearResults() *ProgressUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdate) SetUpdatedAt(v time.Time) *ProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(progress.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(progress.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumAttempts(); ok {
		_spec.SetField(progress.FieldNumAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumAttempts(); ok {
		_spec.AddField(progress.FieldNumAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempted(); ok {
		_spec.SetField(progress.FieldAttempted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(progress.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(progress.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetStep sets the "step" field.
func (_u *ProgressUpdateOne) SetStep(v int) *ProgressUpdateOne {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableStep(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *ProgressUpdateOne) AddStep(v int) *ProgressUpdateOne {
	_u.mutation.AddStep(v)
	return _u
}

// SetNumAttempts sets the "num_attempts" field.
func (_u *ProgressUpdateOne) SetNumAttempts(v int) *ProgressUpdateOne {
	_u.mutation.ResetNumAttempts()
	_u.mutation.SetNumAttempts(v)
	return _u
}

// SetNillableNumAttempts sets the "num_attempts" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableNumAttempts(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetNumAttempts(*v)
	}
	return _u
}

// AddNumAttempts adds value to the "num_attempts" field.
func (_u *ProgressUpdateOne) AddNumAttempts(v int) *ProgressUpdateOne {
	_u.mutation.AddNumAttempts(v)
	return _u
}

// SetAttempted sets the "attempted" field.
func (_u *ProgressUpdateOne) SetAttempted(v bool) *ProgressUpdateOne {
	_u.mutation.SetAttempted(v)
	return _u
}

// SetNillableAttempted sets the "attempted" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableAttempted(v *bool) *ProgressUpdateOne {
	if v != nil {
		_u.SetAttempted(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressUpdateOne) SetCompleted(v bool) *ProgressUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCompleted(v *bool) *ProgressUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetResults sets the "results" field.
func (_u *ProgressUpdateOne) SetResults(v []schema.StudentResult) *ProgressUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// AppendResults appends value to the "results" field.
func (_u *ProgressUpdateOne) AppendResults(v []schema.StudentResult) *ProgressUpdateOne {
	_u.mutation.AppendResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *ProgressUpdateOne) ClearResults() *ProgressUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressUpdateOne) SetUpdatedAt(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(progress.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(progress.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NumAttempts(); ok {
		_spec.SetField(progress.FieldNumAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumAttempts(); ok {
		_spec.AddField(progress.FieldNumAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempted(); ok {
		_spec.SetField(progress.FieldAttempted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(progress.FieldResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progress.FieldResults, value)
		})
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(progress.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
