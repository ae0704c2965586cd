// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/assessly/ent/predicate"
	"github.com/abhisek/assessly/ent/submissionevent"
)

// SubmissionEventUpdate is the builder for updating SubmissionEvent entities.
type SubmissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdate) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *SubmissionEventUpdate) SetExerciseID(v string) *SubmissionEventUpdate {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableExerciseID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *SubmissionEventUpdate) SetStep(v int) *SubmissionEventUpdate {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableStep(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *SubmissionEventUpdate) AddStep(v int) *SubmissionEventUpdate {
	_u.mutation.AddStep(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionEventUpdate) SetStatus(v string) *SubmissionEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableStatus(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAccepted sets the "accepted" field.
func (_u *SubmissionEventUpdate) SetAccepted(v bool) *SubmissionEventUpdate {
	_u.mutation.SetAccepted(v)
	return _u
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableAccepted(v *bool) *SubmissionEventUpdate {
	if v != nil {
		_u.SetAccepted(*v)
	}
	return _u
}

// SetNumAttempts sets the "num_attempts" field.
func (_u *SubmissionEventUpdate) SetNumAttempts(v int) *SubmissionEventUpdate {
	_u.mutation.ResetNumAttempts()
	_u.mutation.SetNumAttempts(v)
	return _u
}

// SetNillableNumAttempts sets the "num_attempts" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableNumAttempts(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetNumAttempts(*v)
	}
	return _u
}

// AddNumAttempts adds value to the "num_attempts" field.
func (_u *SubmissionEventUpdate) AddNumAttempts(v int) *SubmissionEventUpdate {
	_u.mutation.AddNumAttempts(v)
	return _u
}

// SetFinalGrade sets the "final_grade" field.
func (_u *SubmissionEventUpdate) SetFinalGrade(v float64) *SubmissionEventUpdate {
	_u.mutation.ResetFinalGrade()
	_u.mutation.SetFinalGrade(v)
	return _u
}

// SetNillableFinalGrade sets the "final_grade" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableFinalGrade(v *float64) *SubmissionEventUpdate {
	if v != nil {
		_u.SetFinalGrade(*v)
	}
	return _u
}

// AddFinalGrade adds value to the "final_grade" field.
func (_u *SubmissionEventUpdate) AddFinalGrade(v float64) *SubmissionEventUpdate {
	_u.mutation.AddFinalGrade(v)
	return _u
}

// ClearFinalGrade clears the value of the "final_grade" field.
func (_u *SubmissionEventUpdate) ClearFinalGrade() *SubmissionEventUpdate {
	_u.mutation.ClearFinalGrade()
	return _u
}

// SetSubmittedAnswer sets the "submitted_answer" field.
func (_u *SubmissionEventUpdate) SetSubmittedAnswer(v map[string]interface{}) *SubmissionEventUpdate {
	_u.mutation.SetSubmittedAnswer(v)
	return _u
}

// ClearSubmittedAnswer clears the value of the "submitted_answer" field.
func (_u *SubmissionEventUpdate) ClearSubmittedAnswer() *SubmissionEventUpdate {
	_u.mutation.ClearSubmittedAnswer()
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdate) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdate) check() error {
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := submissionevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.exercise_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(submissionevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(submissionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(submissionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submissionevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accepted(); ok {
		_spec.SetField(submissionevent.FieldAccepted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NumAttempts(); ok {
		_spec.SetField(submissionevent.FieldNumAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumAttempts(); ok {
		_spec.AddField(submissionevent.FieldNumAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalGrade(); ok {
		_spec.SetField(submissionevent.FieldFinalGrade, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalGrade(); ok {
		_spec.AddField(submissionevent.FieldFinalGrade, field.TypeFloat64, value)
	}
	if _u.mutation.FinalGradeCleared() {
		_spec.ClearField(submissionevent.FieldFinalGrade, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SubmittedAnswer(); ok {
		_spec.SetField(submissionevent.FieldSubmittedAnswer, field.TypeJSON, value)
	}
	if _u.mutation.SubmittedAnswerCleared() {
		_spec.ClearField(submissionevent.FieldSubmittedAnswer, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionEventUpdateOne is the builder for updating a single SubmissionEvent entity.
type SubmissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// SetExerciseID sets the "exercise_id" field.
func (_u *SubmissionEventUpdateOne) SetExerciseID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableExerciseID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *SubmissionEventUpdateOne) SetStep(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableStep(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *SubmissionEventUpdateOne) AddStep(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddStep(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionEventUpdateOne) SetStatus(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableStatus(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAccepted sets the "accepted" field.
func (_u *SubmissionEventUpdateOne) SetAccepted(v bool) *SubmissionEventUpdateOne {
	_u.mutation.SetAccepted(v)
	return _u
}

// SetNillableAccepted sets the "accepted" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableAccepted(v *bool) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetAccepted(*v)
	}
	return _u
}

// SetNumAttempts sets the "num_attempts" field.
func (_u *SubmissionEventUpdateOne) SetNumAttempts(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetNumAttempts()
	_u.mutation.SetNumAttempts(v)
	return _u
}

// SetNillableNumAttempts sets the "num_attempts" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableNumAttempts(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetNumAttempts(*v)
	}
	return _u
}

// AddNumAttempts adds value to the "num_attempts" field.
func (_u *SubmissionEventUpdateOne) AddNumAttempts(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddNumAttempts(v)
	return _u
}

// SetFinalGrade sets the "final_grade" field.
func (_u *SubmissionEventUpdateOne) SetFinalGrade(v float64) *SubmissionEventUpdateOne {
	_u.mutation.ResetFinalGrade()
	_u.mutation.SetFinalGrade(v)
	return _u
}

// SetNillableFinalGrade sets the "final_grade" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableFinalGrade(v *float64) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetFinalGrade(*v)
	}
	return _u
}

// AddFinalGrade adds value to the "final_grade" field.
func (_u *SubmissionEventUpdateOne) AddFinalGrade(v float64) *SubmissionEventUpdateOne {
	_u.mutation.AddFinalGrade(v)
	return _u
}

// ClearFinalGrade clears the value of the "final_grade" field.
func (_u *SubmissionEventUpdateOne) ClearFinalGrade() *SubmissionEventUpdateOne {
	_u.mutation.ClearFinalGrade()
	return _u
}

// SetSubmittedAnswer sets the "submitted_answer" field.
func (_u *SubmissionEventUpdateOne) SetSubmittedAnswer(v map[string]interface{}) *SubmissionEventUpdateOne {
	_u.mutation.SetSubmittedAnswer(v)
	return _u
}

// ClearSubmittedAnswer clears the value of the "submitted_answer" field.
func (_u *SubmissionEventUpdateOne) ClearSubmittedAnswer() *SubmissionEventUpdateOne {
	_u.mutation.ClearSubmittedAnswer()
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdateOne) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdateOne) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionEventUpdateOne) Select(field string, fields ...string) *SubmissionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmissionEvent entity.
func (_u *SubmissionEventUpdateOne) Save(ctx context.Context) (*SubmissionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) SaveX(ctx context.Context) *SubmissionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdateOne) check() error {
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := submissionevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.exercise_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionevent.FieldID)
		for _, f := range fields {
			if !submissionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionevent.FieldID {
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
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(submissionevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(submissionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(submissionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submissionevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accepted(); ok {
		_spec.SetField(submissionevent.FieldAccepted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NumAttempts(); ok {
		_spec.SetField(submissionevent.FieldNumAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumAttempts(); ok {
		_spec.AddField(submissionevent.FieldNumAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalGrade(); ok {
		_spec.SetField(submissionevent.FieldFinalGrade, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalGrade(); ok {
		_spec.AddField(submissionevent.FieldFinalGrade, field.TypeFloat64, value)
	}
	if _u.mutation.FinalGradeCleared() {
		_spec.ClearField(submissionevent.FieldFinalGrade, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SubmittedAnswer(); ok {
		_spec.SetField(submissionevent.FieldSubmittedAnswer, field.TypeJSON, value)
	}
	if _u.mutation.SubmittedAnswerCleared() {
		_spec.ClearField(submissionevent.FieldSubmittedAnswer, field.TypeJSON)
	}
	_node = &SubmissionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
