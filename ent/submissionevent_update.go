// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prasadg/medprep/ent/predicate"
	"github.com/prasadg/medprep/ent/submissionevent"
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

// SetSessionID sets the "session_id" field.
func (_u *SubmissionEventUpdate) SetSessionID(v string) *SubmissionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSessionID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
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

// SetScore sets the "score" field.
func (_u *SubmissionEventUpdate) SetScore(v int) *SubmissionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableScore(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SubmissionEventUpdate) AddScore(v int) *SubmissionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPointsEarned sets the "points_earned" field.
func (_u *SubmissionEventUpdate) SetPointsEarned(v int) *SubmissionEventUpdate {
	_u.mutation.ResetPointsEarned()
	_u.mutation.SetPointsEarned(v)
	return _u
}

// SetNillablePointsEarned sets the "points_earned" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillablePointsEarned(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetPointsEarned(*v)
	}
	return _u
}

// AddPointsEarned adds value to the "points_earned" field.
func (_u *SubmissionEventUpdate) AddPointsEarned(v int) *SubmissionEventUpdate {
	_u.mutation.AddPointsEarned(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *SubmissionEventUpdate) SetXpEarned(v int) *SubmissionEventUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableXpEarned(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *SubmissionEventUpdate) AddXpEarned(v int) *SubmissionEventUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubmissionEventUpdate) SetErrorMessage(v string) *SubmissionEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableErrorMessage(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubmissionEventUpdate) ClearErrorMessage() *SubmissionEventUpdate {
	_u.mutation.ClearErrorMessage()
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
	if v, ok := _u.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submissionevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.status": %w`, err)}
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submissionevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(submissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(submissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsEarned(); ok {
		_spec.SetField(submissionevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsEarned(); ok {
		_spec.AddField(submissionevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(submissionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(submissionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(submissionevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(submissionevent.FieldErrorMessage, field.TypeString)
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

// SetSessionID sets the "session_id" field.
func (_u *SubmissionEventUpdateOne) SetSessionID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSessionID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
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

// SetScore sets the "score" field.
func (_u *SubmissionEventUpdateOne) SetScore(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableScore(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SubmissionEventUpdateOne) AddScore(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPointsEarned sets the "points_earned" field.
func (_u *SubmissionEventUpdateOne) SetPointsEarned(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetPointsEarned()
	_u.mutation.SetPointsEarned(v)
	return _u
}

// SetNillablePointsEarned sets the "points_earned" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillablePointsEarned(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetPointsEarned(*v)
	}
	return _u
}

// AddPointsEarned adds value to the "points_earned" field.
func (_u *SubmissionEventUpdateOne) AddPointsEarned(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddPointsEarned(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *SubmissionEventUpdateOne) SetXpEarned(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableXpEarned(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *SubmissionEventUpdateOne) AddXpEarned(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubmissionEventUpdateOne) SetErrorMessage(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableErrorMessage(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubmissionEventUpdateOne) ClearErrorMessage() *SubmissionEventUpdateOne {
	_u.mutation.ClearErrorMessage()
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
	if v, ok := _u.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submissionevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.status": %w`, err)}
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submissionevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(submissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(submissionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsEarned(); ok {
		_spec.SetField(submissionevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsEarned(); ok {
		_spec.AddField(submissionevent.FieldPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(submissionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(submissionevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(submissionevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(submissionevent.FieldErrorMessage, field.TypeString)
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
