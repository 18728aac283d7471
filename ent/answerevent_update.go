// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/prasadg/medprep/ent/answerevent"
	"github.com/prasadg/medprep/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSpecialtyID sets the "specialty_id" field.
func (_u *AnswerEventUpdate) SetSpecialtyID(v string) *AnswerEventUpdate {
	_u.mutation.SetSpecialtyID(v)
	return _u
}

// SetNillableSpecialtyID sets the "specialty_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSpecialtyID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSpecialtyID(*v)
	}
	return _u
}

// SetSelectedOption sets the "selected_option" field.
func (_u *AnswerEventUpdate) SetSelectedOption(v int) *AnswerEventUpdate {
	_u.mutation.ResetSelectedOption()
	_u.mutation.SetSelectedOption(v)
	return _u
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSelectedOption(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetSelectedOption(*v)
	}
	return _u
}

// AddSelectedOption adds value to the "selected_option" field.
func (_u *AnswerEventUpdate) AddSelectedOption(v int) *AnswerEventUpdate {
	_u.mutation.AddSelectedOption(v)
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *AnswerEventUpdate) SetCorrectOption(v int) *AnswerEventUpdate {
	_u.mutation.ResetCorrectOption()
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrectOption(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// AddCorrectOption adds value to the "correct_option" field.
func (_u *AnswerEventUpdate) AddCorrectOption(v int) *AnswerEventUpdate {
	_u.mutation.AddCorrectOption(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int64) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int64) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int64) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpecialtyID(); ok {
		if err := answerevent.SpecialtyIDValidator(v); err != nil {
			return &ValidationError{Name: "specialty_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.specialty_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpecialtyID(); ok {
		_spec.SetField(answerevent.FieldSpecialtyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedOption(); ok {
		_spec.SetField(answerevent.FieldSelectedOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedOption(); ok {
		_spec.AddField(answerevent.FieldSelectedOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(answerevent.FieldCorrectOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectOption(); ok {
		_spec.AddField(answerevent.FieldCorrectOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSpecialtyID sets the "specialty_id" field.
func (_u *AnswerEventUpdateOne) SetSpecialtyID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSpecialtyID(v)
	return _u
}

// SetNillableSpecialtyID sets the "specialty_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSpecialtyID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSpecialtyID(*v)
	}
	return _u
}

// SetSelectedOption sets the "selected_option" field.
func (_u *AnswerEventUpdateOne) SetSelectedOption(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetSelectedOption()
	_u.mutation.SetSelectedOption(v)
	return _u
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSelectedOption(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSelectedOption(*v)
	}
	return _u
}

// AddSelectedOption adds value to the "selected_option" field.
func (_u *AnswerEventUpdateOne) AddSelectedOption(v int) *AnswerEventUpdateOne {
	_u.mutation.AddSelectedOption(v)
	return _u
}

// SetCorrectOption sets the "correct_option" field.
func (_u *AnswerEventUpdateOne) SetCorrectOption(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetCorrectOption()
	_u.mutation.SetCorrectOption(v)
	return _u
}

// SetNillableCorrectOption sets the "correct_option" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrectOption(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectOption(*v)
	}
	return _u
}

// AddCorrectOption adds value to the "correct_option" field.
func (_u *AnswerEventUpdateOne) AddCorrectOption(v int) *AnswerEventUpdateOne {
	_u.mutation.AddCorrectOption(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int64) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int64) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpecialtyID(); ok {
		if err := answerevent.SpecialtyIDValidator(v); err != nil {
			return &ValidationError{Name: "specialty_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.specialty_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpecialtyID(); ok {
		_spec.SetField(answerevent.FieldSpecialtyID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedOption(); ok {
		_spec.SetField(answerevent.FieldSelectedOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedOption(); ok {
		_spec.AddField(answerevent.FieldSelectedOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectOption(); ok {
		_spec.SetField(answerevent.FieldCorrectOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectOption(); ok {
		_spec.AddField(answerevent.FieldCorrectOption, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt64, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
