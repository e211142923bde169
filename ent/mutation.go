// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mediqo/mediqo/ent/appointment"
	"github.com/mediqo/mediqo/ent/clinic"
	"github.com/mediqo/mediqo/ent/conversationturn"
	"github.com/mediqo/mediqo/ent/escalation"
	"github.com/mediqo/mediqo/ent/hold"
	"github.com/mediqo/mediqo/ent/patient"
	"github.com/mediqo/mediqo/ent/policysnapshot"
	"github.com/mediqo/mediqo/ent/predicate"
	"github.com/mediqo/mediqo/ent/session"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppointment      = "Appointment"
	TypeClinic           = "Clinic"
	TypeConversationTurn = "ConversationTurn"
	TypeEscalation       = "Escalation"
	TypeHold             = "Hold"
	TypePatient          = "Patient"
	TypePolicySnapshot   = "PolicySnapshot"
	TypeSession          = "Session"
)

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	clinic_id            *string
	patient_id           *string
	doctor_id            *string
	room_id              *string
	service_id           *string
	start_time           *time.Time
	end_time             *time.Time
	status               *appointment.Status
	policy_snapshot_id   *string
	policy_version       *int
	addpolicy_version    *int
	policy_bundle_sha256 *string
	calendar_event_id    *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Appointment, error)
	predicates           []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id string) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appointment entities.
func (m *AppointmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClinicID sets the "clinic_id" field.
func (m *AppointmentMutation) SetClinicID(s string) {
	m.clinic_id = &s
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *AppointmentMutation) ClinicID() (r string, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldClinicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *AppointmentMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *AppointmentMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *AppointmentMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *AppointmentMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *AppointmentMutation) SetDoctorID(s string) {
	m.doctor_id = &s
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *AppointmentMutation) DoctorID() (r string, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldDoctorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *AppointmentMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetRoomID sets the "room_id" field.
func (m *AppointmentMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *AppointmentMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *AppointmentMutation) ResetRoomID() {
	m.room_id = nil
}

// SetServiceID sets the "service_id" field.
func (m *AppointmentMutation) SetServiceID(s string) {
	m.service_id = &s
}

// ServiceID returns the value of the "service_id" field in the mutation.
func (m *AppointmentMutation) ServiceID() (r string, exists bool) {
	v := m.service_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceID returns the old "service_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldServiceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceID: %w", err)
	}
	return oldValue.ServiceID, nil
}

// ResetServiceID resets all changes to the "service_id" field.
func (m *AppointmentMutation) ResetServiceID() {
	m.service_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *AppointmentMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *AppointmentMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *AppointmentMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *AppointmentMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *AppointmentMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *AppointmentMutation) ResetEndTime() {
	m.end_time = nil
}

// SetStatus sets the "status" field.
func (m *AppointmentMutation) SetStatus(a appointment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AppointmentMutation) Status() (r appointment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStatus(ctx context.Context) (v appointment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AppointmentMutation) ResetStatus() {
	m.status = nil
}

// SetPolicySnapshotID sets the "policy_snapshot_id" field.
func (m *AppointmentMutation) SetPolicySnapshotID(s string) {
	m.policy_snapshot_id = &s
}

// PolicySnapshotID returns the value of the "policy_snapshot_id" field in the mutation.
func (m *AppointmentMutation) PolicySnapshotID() (r string, exists bool) {
	v := m.policy_snapshot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicySnapshotID returns the old "policy_snapshot_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPolicySnapshotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicySnapshotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicySnapshotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicySnapshotID: %w", err)
	}
	return oldValue.PolicySnapshotID, nil
}

// ClearPolicySnapshotID clears the value of the "policy_snapshot_id" field.
func (m *AppointmentMutation) ClearPolicySnapshotID() {
	m.policy_snapshot_id = nil
	m.clearedFields[appointment.FieldPolicySnapshotID] = struct{}{}
}

// PolicySnapshotIDCleared returns if the "policy_snapshot_id" field was cleared in this mutation.
func (m *AppointmentMutation) PolicySnapshotIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldPolicySnapshotID]
	return ok
}

// ResetPolicySnapshotID resets all changes to the "policy_snapshot_id" field.
func (m *AppointmentMutation) ResetPolicySnapshotID() {
	m.policy_snapshot_id = nil
	delete(m.clearedFields, appointment.FieldPolicySnapshotID)
}

// SetPolicyVersion sets the "policy_version" field.
func (m *AppointmentMutation) SetPolicyVersion(i int) {
	m.policy_version = &i
	m.addpolicy_version = nil
}

// PolicyVersion returns the value of the "policy_version" field in the mutation.
func (m *AppointmentMutation) PolicyVersion() (r int, exists bool) {
	v := m.policy_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyVersion returns the old "policy_version" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPolicyVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyVersion: %w", err)
	}
	return oldValue.PolicyVersion, nil
}

// AddPolicyVersion adds i to the "policy_version" field.
func (m *AppointmentMutation) AddPolicyVersion(i int) {
	if m.addpolicy_version != nil {
		*m.addpolicy_version += i
	} else {
		m.addpolicy_version = &i
	}
}

// AddedPolicyVersion returns the value that was added to the "policy_version" field in this mutation.
func (m *AppointmentMutation) AddedPolicyVersion() (r int, exists bool) {
	v := m.addpolicy_version
	if v == nil {
		return
	}
	return *v, true
}

// ClearPolicyVersion clears the value of the "policy_version" field.
func (m *AppointmentMutation) ClearPolicyVersion() {
	m.policy_version = nil
	m.addpolicy_version = nil
	m.clearedFields[appointment.FieldPolicyVersion] = struct{}{}
}

// PolicyVersionCleared returns if the "policy_version" field was cleared in this mutation.
func (m *AppointmentMutation) PolicyVersionCleared() bool {
	_, ok := m.clearedFields[appointment.FieldPolicyVersion]
	return ok
}

// ResetPolicyVersion resets all changes to the "policy_version" field.
func (m *AppointmentMutation) ResetPolicyVersion() {
	m.policy_version = nil
	m.addpolicy_version = nil
	delete(m.clearedFields, appointment.FieldPolicyVersion)
}

// SetPolicyBundleSha256 sets the "policy_bundle_sha256" field.
func (m *AppointmentMutation) SetPolicyBundleSha256(s string) {
	m.policy_bundle_sha256 = &s
}

// PolicyBundleSha256 returns the value of the "policy_bundle_sha256" field in the mutation.
func (m *AppointmentMutation) PolicyBundleSha256() (r string, exists bool) {
	v := m.policy_bundle_sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyBundleSha256 returns the old "policy_bundle_sha256" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldPolicyBundleSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyBundleSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyBundleSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyBundleSha256: %w", err)
	}
	return oldValue.PolicyBundleSha256, nil
}

// ClearPolicyBundleSha256 clears the value of the "policy_bundle_sha256" field.
func (m *AppointmentMutation) ClearPolicyBundleSha256() {
	m.policy_bundle_sha256 = nil
	m.clearedFields[appointment.FieldPolicyBundleSha256] = struct{}{}
}

// PolicyBundleSha256Cleared returns if the "policy_bundle_sha256" field was cleared in this mutation.
func (m *AppointmentMutation) PolicyBundleSha256Cleared() bool {
	_, ok := m.clearedFields[appointment.FieldPolicyBundleSha256]
	return ok
}

// ResetPolicyBundleSha256 resets all changes to the "policy_bundle_sha256" field.
func (m *AppointmentMutation) ResetPolicyBundleSha256() {
	m.policy_bundle_sha256 = nil
	delete(m.clearedFields, appointment.FieldPolicyBundleSha256)
}

// SetCalendarEventID sets the "calendar_event_id" field.
func (m *AppointmentMutation) SetCalendarEventID(s string) {
	m.calendar_event_id = &s
}

// CalendarEventID returns the value of the "calendar_event_id" field in the mutation.
func (m *AppointmentMutation) CalendarEventID() (r string, exists bool) {
	v := m.calendar_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCalendarEventID returns the old "calendar_event_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCalendarEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalendarEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalendarEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalendarEventID: %w", err)
	}
	return oldValue.CalendarEventID, nil
}

// ClearCalendarEventID clears the value of the "calendar_event_id" field.
func (m *AppointmentMutation) ClearCalendarEventID() {
	m.calendar_event_id = nil
	m.clearedFields[appointment.FieldCalendarEventID] = struct{}{}
}

// CalendarEventIDCleared returns if the "calendar_event_id" field was cleared in this mutation.
func (m *AppointmentMutation) CalendarEventIDCleared() bool {
	_, ok := m.clearedFields[appointment.FieldCalendarEventID]
	return ok
}

// ResetCalendarEventID resets all changes to the "calendar_event_id" field.
func (m *AppointmentMutation) ResetCalendarEventID() {
	m.calendar_event_id = nil
	delete(m.clearedFields, appointment.FieldCalendarEventID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppointmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.clinic_id != nil {
		fields = append(fields, appointment.FieldClinicID)
	}
	if m.patient_id != nil {
		fields = append(fields, appointment.FieldPatientID)
	}
	if m.doctor_id != nil {
		fields = append(fields, appointment.FieldDoctorID)
	}
	if m.room_id != nil {
		fields = append(fields, appointment.FieldRoomID)
	}
	if m.service_id != nil {
		fields = append(fields, appointment.FieldServiceID)
	}
	if m.start_time != nil {
		fields = append(fields, appointment.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, appointment.FieldEndTime)
	}
	if m.status != nil {
		fields = append(fields, appointment.FieldStatus)
	}
	if m.policy_snapshot_id != nil {
		fields = append(fields, appointment.FieldPolicySnapshotID)
	}
	if m.policy_version != nil {
		fields = append(fields, appointment.FieldPolicyVersion)
	}
	if m.policy_bundle_sha256 != nil {
		fields = append(fields, appointment.FieldPolicyBundleSha256)
	}
	if m.calendar_event_id != nil {
		fields = append(fields, appointment.FieldCalendarEventID)
	}
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldClinicID:
		return m.ClinicID()
	case appointment.FieldPatientID:
		return m.PatientID()
	case appointment.FieldDoctorID:
		return m.DoctorID()
	case appointment.FieldRoomID:
		return m.RoomID()
	case appointment.FieldServiceID:
		return m.ServiceID()
	case appointment.FieldStartTime:
		return m.StartTime()
	case appointment.FieldEndTime:
		return m.EndTime()
	case appointment.FieldStatus:
		return m.Status()
	case appointment.FieldPolicySnapshotID:
		return m.PolicySnapshotID()
	case appointment.FieldPolicyVersion:
		return m.PolicyVersion()
	case appointment.FieldPolicyBundleSha256:
		return m.PolicyBundleSha256()
	case appointment.FieldCalendarEventID:
		return m.CalendarEventID()
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldClinicID:
		return m.OldClinicID(ctx)
	case appointment.FieldPatientID:
		return m.OldPatientID(ctx)
	case appointment.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case appointment.FieldRoomID:
		return m.OldRoomID(ctx)
	case appointment.FieldServiceID:
		return m.OldServiceID(ctx)
	case appointment.FieldStartTime:
		return m.OldStartTime(ctx)
	case appointment.FieldEndTime:
		return m.OldEndTime(ctx)
	case appointment.FieldStatus:
		return m.OldStatus(ctx)
	case appointment.FieldPolicySnapshotID:
		return m.OldPolicySnapshotID(ctx)
	case appointment.FieldPolicyVersion:
		return m.OldPolicyVersion(ctx)
	case appointment.FieldPolicyBundleSha256:
		return m.OldPolicyBundleSha256(ctx)
	case appointment.FieldCalendarEventID:
		return m.OldCalendarEventID(ctx)
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldClinicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case appointment.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case appointment.FieldDoctorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case appointment.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case appointment.FieldServiceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceID(v)
		return nil
	case appointment.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case appointment.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case appointment.FieldStatus:
		v, ok := value.(appointment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case appointment.FieldPolicySnapshotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicySnapshotID(v)
		return nil
	case appointment.FieldPolicyVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyVersion(v)
		return nil
	case appointment.FieldPolicyBundleSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyBundleSha256(v)
		return nil
	case appointment.FieldCalendarEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalendarEventID(v)
		return nil
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	var fields []string
	if m.addpolicy_version != nil {
		fields = append(fields, appointment.FieldPolicyVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldPolicyVersion:
		return m.AddedPolicyVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldPolicyVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPolicyVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointment.FieldPolicySnapshotID) {
		fields = append(fields, appointment.FieldPolicySnapshotID)
	}
	if m.FieldCleared(appointment.FieldPolicyVersion) {
		fields = append(fields, appointment.FieldPolicyVersion)
	}
	if m.FieldCleared(appointment.FieldPolicyBundleSha256) {
		fields = append(fields, appointment.FieldPolicyBundleSha256)
	}
	if m.FieldCleared(appointment.FieldCalendarEventID) {
		fields = append(fields, appointment.FieldCalendarEventID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	switch name {
	case appointment.FieldPolicySnapshotID:
		m.ClearPolicySnapshotID()
		return nil
	case appointment.FieldPolicyVersion:
		m.ClearPolicyVersion()
		return nil
	case appointment.FieldPolicyBundleSha256:
		m.ClearPolicyBundleSha256()
		return nil
	case appointment.FieldCalendarEventID:
		m.ClearCalendarEventID()
		return nil
	}
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldClinicID:
		m.ResetClinicID()
		return nil
	case appointment.FieldPatientID:
		m.ResetPatientID()
		return nil
	case appointment.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case appointment.FieldRoomID:
		m.ResetRoomID()
		return nil
	case appointment.FieldServiceID:
		m.ResetServiceID()
		return nil
	case appointment.FieldStartTime:
		m.ResetStartTime()
		return nil
	case appointment.FieldEndTime:
		m.ResetEndTime()
		return nil
	case appointment.FieldStatus:
		m.ResetStatus()
		return nil
	case appointment.FieldPolicySnapshotID:
		m.ResetPolicySnapshotID()
		return nil
	case appointment.FieldPolicyVersion:
		m.ResetPolicyVersion()
		return nil
	case appointment.FieldPolicyBundleSha256:
		m.ResetPolicyBundleSha256()
		return nil
	case appointment.FieldCalendarEventID:
		m.ResetCalendarEventID()
		return nil
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// ClinicMutation represents an operation that mutates the Clinic nodes in the graph.
type ClinicMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	timezone         *string
	instance_name    *string
	default_language *string
	profile          *map[string]interface{}
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Clinic, error)
	predicates       []predicate.Clinic
}

var _ ent.Mutation = (*ClinicMutation)(nil)

// clinicOption allows management of the mutation configuration using functional options.
type clinicOption func(*ClinicMutation)

// newClinicMutation creates new mutation for the Clinic entity.
func newClinicMutation(c config, op Op, opts ...clinicOption) *ClinicMutation {
	m := &ClinicMutation{
		config:        c,
		op:            op,
		typ:           TypeClinic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClinicID sets the ID field of the mutation.
func withClinicID(id string) clinicOption {
	return func(m *ClinicMutation) {
		var (
			err   error
			once  sync.Once
			value *Clinic
		)
		m.oldValue = func(ctx context.Context) (*Clinic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Clinic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClinic sets the old Clinic of the mutation.
func withClinic(node *Clinic) clinicOption {
	return func(m *ClinicMutation) {
		m.oldValue = func(context.Context) (*Clinic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClinicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClinicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Clinic entities.
func (m *ClinicMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClinicMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClinicMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Clinic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ClinicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ClinicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ClinicMutation) ResetName() {
	m.name = nil
}

// SetTimezone sets the "timezone" field.
func (m *ClinicMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *ClinicMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *ClinicMutation) ResetTimezone() {
	m.timezone = nil
}

// SetInstanceName sets the "instance_name" field.
func (m *ClinicMutation) SetInstanceName(s string) {
	m.instance_name = &s
}

// InstanceName returns the value of the "instance_name" field in the mutation.
func (m *ClinicMutation) InstanceName() (r string, exists bool) {
	v := m.instance_name
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceName returns the old "instance_name" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldInstanceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceName: %w", err)
	}
	return oldValue.InstanceName, nil
}

// ClearInstanceName clears the value of the "instance_name" field.
func (m *ClinicMutation) ClearInstanceName() {
	m.instance_name = nil
	m.clearedFields[clinic.FieldInstanceName] = struct{}{}
}

// InstanceNameCleared returns if the "instance_name" field was cleared in this mutation.
func (m *ClinicMutation) InstanceNameCleared() bool {
	_, ok := m.clearedFields[clinic.FieldInstanceName]
	return ok
}

// ResetInstanceName resets all changes to the "instance_name" field.
func (m *ClinicMutation) ResetInstanceName() {
	m.instance_name = nil
	delete(m.clearedFields, clinic.FieldInstanceName)
}

// SetDefaultLanguage sets the "default_language" field.
func (m *ClinicMutation) SetDefaultLanguage(s string) {
	m.default_language = &s
}

// DefaultLanguage returns the value of the "default_language" field in the mutation.
func (m *ClinicMutation) DefaultLanguage() (r string, exists bool) {
	v := m.default_language
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultLanguage returns the old "default_language" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldDefaultLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultLanguage: %w", err)
	}
	return oldValue.DefaultLanguage, nil
}

// ResetDefaultLanguage resets all changes to the "default_language" field.
func (m *ClinicMutation) ResetDefaultLanguage() {
	m.default_language = nil
}

// SetProfile sets the "profile" field.
func (m *ClinicMutation) SetProfile(value map[string]interface{}) {
	m.profile = &value
}

// Profile returns the value of the "profile" field in the mutation.
func (m *ClinicMutation) Profile() (r map[string]interface{}, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldProfile(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *ClinicMutation) ResetProfile() {
	m.profile = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClinicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClinicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClinicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClinicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClinicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Clinic entity.
// If the Clinic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClinicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClinicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ClinicMutation builder.
func (m *ClinicMutation) Where(ps ...predicate.Clinic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClinicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClinicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Clinic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClinicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClinicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Clinic).
func (m *ClinicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClinicMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, clinic.FieldName)
	}
	if m.timezone != nil {
		fields = append(fields, clinic.FieldTimezone)
	}
	if m.instance_name != nil {
		fields = append(fields, clinic.FieldInstanceName)
	}
	if m.default_language != nil {
		fields = append(fields, clinic.FieldDefaultLanguage)
	}
	if m.profile != nil {
		fields = append(fields, clinic.FieldProfile)
	}
	if m.created_at != nil {
		fields = append(fields, clinic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clinic.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClinicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clinic.FieldName:
		return m.Name()
	case clinic.FieldTimezone:
		return m.Timezone()
	case clinic.FieldInstanceName:
		return m.InstanceName()
	case clinic.FieldDefaultLanguage:
		return m.DefaultLanguage()
	case clinic.FieldProfile:
		return m.Profile()
	case clinic.FieldCreatedAt:
		return m.CreatedAt()
	case clinic.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClinicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clinic.FieldName:
		return m.OldName(ctx)
	case clinic.FieldTimezone:
		return m.OldTimezone(ctx)
	case clinic.FieldInstanceName:
		return m.OldInstanceName(ctx)
	case clinic.FieldDefaultLanguage:
		return m.OldDefaultLanguage(ctx)
	case clinic.FieldProfile:
		return m.OldProfile(ctx)
	case clinic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clinic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Clinic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clinic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case clinic.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case clinic.FieldInstanceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceName(v)
		return nil
	case clinic.FieldDefaultLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultLanguage(v)
		return nil
	case clinic.FieldProfile:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case clinic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clinic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClinicMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClinicMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClinicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Clinic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClinicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clinic.FieldInstanceName) {
		fields = append(fields, clinic.FieldInstanceName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClinicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClinicMutation) ClearField(name string) error {
	switch name {
	case clinic.FieldInstanceName:
		m.ClearInstanceName()
		return nil
	}
	return fmt.Errorf("unknown Clinic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClinicMutation) ResetField(name string) error {
	switch name {
	case clinic.FieldName:
		m.ResetName()
		return nil
	case clinic.FieldTimezone:
		m.ResetTimezone()
		return nil
	case clinic.FieldInstanceName:
		m.ResetInstanceName()
		return nil
	case clinic.FieldDefaultLanguage:
		m.ResetDefaultLanguage()
		return nil
	case clinic.FieldProfile:
		m.ResetProfile()
		return nil
	case clinic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clinic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Clinic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClinicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClinicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClinicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClinicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClinicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClinicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClinicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Clinic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClinicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Clinic edge %s", name)
}

// ConversationTurnMutation represents an operation that mutates the ConversationTurn nodes in the graph.
type ConversationTurnMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	clinic_id             *string
	sequence_number       *int
	addsequence_number    *int
	user_message          *string
	assistant_message     *string
	lane                  *string
	fast_path             *bool
	latency_ms            *int
	addlatency_ms         *int
	tools_called          *[]map[string]interface{}
	appendtools_called    []map[string]interface{}
	hallucination_blocked *bool
	response_flagged      *bool
	constraints_delta     *map[string]interface{}
	created_at            *time.Time
	clearedFields         map[string]struct{}
	session               *string
	clearedsession        bool
	done                  bool
	oldValue              func(context.Context) (*ConversationTurn, error)
	predicates            []predicate.ConversationTurn
}

var _ ent.Mutation = (*ConversationTurnMutation)(nil)

// conversationturnOption allows management of the mutation configuration using functional options.
type conversationturnOption func(*ConversationTurnMutation)

// newConversationTurnMutation creates new mutation for the ConversationTurn entity.
func newConversationTurnMutation(c config, op Op, opts ...conversationturnOption) *ConversationTurnMutation {
	m := &ConversationTurnMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationTurn,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationTurnID sets the ID field of the mutation.
func withConversationTurnID(id string) conversationturnOption {
	return func(m *ConversationTurnMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationTurn
		)
		m.oldValue = func(ctx context.Context) (*ConversationTurn, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationTurn.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationTurn sets the old ConversationTurn of the mutation.
func withConversationTurn(node *ConversationTurn) conversationturnOption {
	return func(m *ConversationTurnMutation) {
		m.oldValue = func(context.Context) (*ConversationTurn, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationTurnMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationTurnMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConversationTurn entities.
func (m *ConversationTurnMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationTurnMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationTurnMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationTurn.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ConversationTurnMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ConversationTurnMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ConversationTurnMutation) ResetSessionID() {
	m.session = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *ConversationTurnMutation) SetClinicID(s string) {
	m.clinic_id = &s
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *ConversationTurnMutation) ClinicID() (r string, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldClinicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *ConversationTurnMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *ConversationTurnMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *ConversationTurnMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *ConversationTurnMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *ConversationTurnMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *ConversationTurnMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetUserMessage sets the "user_message" field.
func (m *ConversationTurnMutation) SetUserMessage(s string) {
	m.user_message = &s
}

// UserMessage returns the value of the "user_message" field in the mutation.
func (m *ConversationTurnMutation) UserMessage() (r string, exists bool) {
	v := m.user_message
	if v == nil {
		return
	}
	return *v, true
}

// OldUserMessage returns the old "user_message" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldUserMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserMessage: %w", err)
	}
	return oldValue.UserMessage, nil
}

// ResetUserMessage resets all changes to the "user_message" field.
func (m *ConversationTurnMutation) ResetUserMessage() {
	m.user_message = nil
}

// SetAssistantMessage sets the "assistant_message" field.
func (m *ConversationTurnMutation) SetAssistantMessage(s string) {
	m.assistant_message = &s
}

// AssistantMessage returns the value of the "assistant_message" field in the mutation.
func (m *ConversationTurnMutation) AssistantMessage() (r string, exists bool) {
	v := m.assistant_message
	if v == nil {
		return
	}
	return *v, true
}

// OldAssistantMessage returns the old "assistant_message" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldAssistantMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssistantMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssistantMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssistantMessage: %w", err)
	}
	return oldValue.AssistantMessage, nil
}

// ClearAssistantMessage clears the value of the "assistant_message" field.
func (m *ConversationTurnMutation) ClearAssistantMessage() {
	m.assistant_message = nil
	m.clearedFields[conversationturn.FieldAssistantMessage] = struct{}{}
}

// AssistantMessageCleared returns if the "assistant_message" field was cleared in this mutation.
func (m *ConversationTurnMutation) AssistantMessageCleared() bool {
	_, ok := m.clearedFields[conversationturn.FieldAssistantMessage]
	return ok
}

// ResetAssistantMessage resets all changes to the "assistant_message" field.
func (m *ConversationTurnMutation) ResetAssistantMessage() {
	m.assistant_message = nil
	delete(m.clearedFields, conversationturn.FieldAssistantMessage)
}

// SetLane sets the "lane" field.
func (m *ConversationTurnMutation) SetLane(s string) {
	m.lane = &s
}

// Lane returns the value of the "lane" field in the mutation.
func (m *ConversationTurnMutation) Lane() (r string, exists bool) {
	v := m.lane
	if v == nil {
		return
	}
	return *v, true
}

// OldLane returns the old "lane" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldLane(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLane is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLane requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLane: %w", err)
	}
	return oldValue.Lane, nil
}

// ClearLane clears the value of the "lane" field.
func (m *ConversationTurnMutation) ClearLane() {
	m.lane = nil
	m.clearedFields[conversationturn.FieldLane] = struct{}{}
}

// LaneCleared returns if the "lane" field was cleared in this mutation.
func (m *ConversationTurnMutation) LaneCleared() bool {
	_, ok := m.clearedFields[conversationturn.FieldLane]
	return ok
}

// ResetLane resets all changes to the "lane" field.
func (m *ConversationTurnMutation) ResetLane() {
	m.lane = nil
	delete(m.clearedFields, conversationturn.FieldLane)
}

// SetFastPath sets the "fast_path" field.
func (m *ConversationTurnMutation) SetFastPath(b bool) {
	m.fast_path = &b
}

// FastPath returns the value of the "fast_path" field in the mutation.
func (m *ConversationTurnMutation) FastPath() (r bool, exists bool) {
	v := m.fast_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFastPath returns the old "fast_path" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldFastPath(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFastPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFastPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFastPath: %w", err)
	}
	return oldValue.FastPath, nil
}

// ResetFastPath resets all changes to the "fast_path" field.
func (m *ConversationTurnMutation) ResetFastPath() {
	m.fast_path = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ConversationTurnMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ConversationTurnMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ConversationTurnMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ConversationTurnMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (m *ConversationTurnMutation) ClearLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	m.clearedFields[conversationturn.FieldLatencyMs] = struct{}{}
}

// LatencyMsCleared returns if the "latency_ms" field was cleared in this mutation.
func (m *ConversationTurnMutation) LatencyMsCleared() bool {
	_, ok := m.clearedFields[conversationturn.FieldLatencyMs]
	return ok
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ConversationTurnMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	delete(m.clearedFields, conversationturn.FieldLatencyMs)
}

// SetToolsCalled sets the "tools_called" field.
func (m *ConversationTurnMutation) SetToolsCalled(value []map[string]interface{}) {
	m.tools_called = &value
	m.appendtools_called = nil
}

// ToolsCalled returns the value of the "tools_called" field in the mutation.
func (m *ConversationTurnMutation) ToolsCalled() (r []map[string]interface{}, exists bool) {
	v := m.tools_called
	if v == nil {
		return
	}
	return *v, true
}

// OldToolsCalled returns the old "tools_called" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldToolsCalled(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolsCalled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolsCalled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolsCalled: %w", err)
	}
	return oldValue.ToolsCalled, nil
}

// AppendToolsCalled adds value to the "tools_called" field.
func (m *ConversationTurnMutation) AppendToolsCalled(value []map[string]interface{}) {
	m.appendtools_called = append(m.appendtools_called, value...)
}

// AppendedToolsCalled returns the list of values that were appended to the "tools_called" field in this mutation.
func (m *ConversationTurnMutation) AppendedToolsCalled() ([]map[string]interface{}, bool) {
	if len(m.appendtools_called) == 0 {
		return nil, false
	}
	return m.appendtools_called, true
}

// ClearToolsCalled clears the value of the "tools_called" field.
func (m *ConversationTurnMutation) ClearToolsCalled() {
	m.tools_called = nil
	m.appendtools_called = nil
	m.clearedFields[conversationturn.FieldToolsCalled] = struct{}{}
}

// ToolsCalledCleared returns if the "tools_called" field was cleared in this mutation.
func (m *ConversationTurnMutation) ToolsCalledCleared() bool {
	_, ok := m.clearedFields[conversationturn.FieldToolsCalled]
	return ok
}

// ResetToolsCalled resets all changes to the "tools_called" field.
func (m *ConversationTurnMutation) ResetToolsCalled() {
	m.tools_called = nil
	m.appendtools_called = nil
	delete(m.clearedFields, conversationturn.FieldToolsCalled)
}

// SetHallucinationBlocked sets the "hallucination_blocked" field.
func (m *ConversationTurnMutation) SetHallucinationBlocked(b bool) {
	m.hallucination_blocked = &b
}

// HallucinationBlocked returns the value of the "hallucination_blocked" field in the mutation.
func (m *ConversationTurnMutation) HallucinationBlocked() (r bool, exists bool) {
	v := m.hallucination_blocked
	if v == nil {
		return
	}
	return *v, true
}

// OldHallucinationBlocked returns the old "hallucination_blocked" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldHallucinationBlocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHallucinationBlocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHallucinationBlocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHallucinationBlocked: %w", err)
	}
	return oldValue.HallucinationBlocked, nil
}

// ResetHallucinationBlocked resets all changes to the "hallucination_blocked" field.
func (m *ConversationTurnMutation) ResetHallucinationBlocked() {
	m.hallucination_blocked = nil
}

// SetResponseFlagged sets the "response_flagged" field.
func (m *ConversationTurnMutation) SetResponseFlagged(b bool) {
	m.response_flagged = &b
}

// ResponseFlagged returns the value of the "response_flagged" field in the mutation.
func (m *ConversationTurnMutation) ResponseFlagged() (r bool, exists bool) {
	v := m.response_flagged
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseFlagged returns the old "response_flagged" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldResponseFlagged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseFlagged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseFlagged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseFlagged: %w", err)
	}
	return oldValue.ResponseFlagged, nil
}

// ResetResponseFlagged resets all changes to the "response_flagged" field.
func (m *ConversationTurnMutation) ResetResponseFlagged() {
	m.response_flagged = nil
}

// SetConstraintsDelta sets the "constraints_delta" field.
func (m *ConversationTurnMutation) SetConstraintsDelta(value map[string]interface{}) {
	m.constraints_delta = &value
}

// ConstraintsDelta returns the value of the "constraints_delta" field in the mutation.
func (m *ConversationTurnMutation) ConstraintsDelta() (r map[string]interface{}, exists bool) {
	v := m.constraints_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraintsDelta returns the old "constraints_delta" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldConstraintsDelta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraintsDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraintsDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraintsDelta: %w", err)
	}
	return oldValue.ConstraintsDelta, nil
}

// ClearConstraintsDelta clears the value of the "constraints_delta" field.
func (m *ConversationTurnMutation) ClearConstraintsDelta() {
	m.constraints_delta = nil
	m.clearedFields[conversationturn.FieldConstraintsDelta] = struct{}{}
}

// ConstraintsDeltaCleared returns if the "constraints_delta" field was cleared in this mutation.
func (m *ConversationTurnMutation) ConstraintsDeltaCleared() bool {
	_, ok := m.clearedFields[conversationturn.FieldConstraintsDelta]
	return ok
}

// ResetConstraintsDelta resets all changes to the "constraints_delta" field.
func (m *ConversationTurnMutation) ResetConstraintsDelta() {
	m.constraints_delta = nil
	delete(m.clearedFields, conversationturn.FieldConstraintsDelta)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationTurnMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationTurnMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConversationTurn entity.
// If the ConversationTurn object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationTurnMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationTurnMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ConversationTurnMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[conversationturn.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ConversationTurnMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ConversationTurnMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ConversationTurnMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ConversationTurnMutation builder.
func (m *ConversationTurnMutation) Where(ps ...predicate.ConversationTurn) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationTurnMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationTurnMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationTurn, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationTurnMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationTurnMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationTurn).
func (m *ConversationTurnMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationTurnMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session != nil {
		fields = append(fields, conversationturn.FieldSessionID)
	}
	if m.clinic_id != nil {
		fields = append(fields, conversationturn.FieldClinicID)
	}
	if m.sequence_number != nil {
		fields = append(fields, conversationturn.FieldSequenceNumber)
	}
	if m.user_message != nil {
		fields = append(fields, conversationturn.FieldUserMessage)
	}
	if m.assistant_message != nil {
		fields = append(fields, conversationturn.FieldAssistantMessage)
	}
	if m.lane != nil {
		fields = append(fields, conversationturn.FieldLane)
	}
	if m.fast_path != nil {
		fields = append(fields, conversationturn.FieldFastPath)
	}
	if m.latency_ms != nil {
		fields = append(fields, conversationturn.FieldLatencyMs)
	}
	if m.tools_called != nil {
		fields = append(fields, conversationturn.FieldToolsCalled)
	}
	if m.hallucination_blocked != nil {
		fields = append(fields, conversationturn.FieldHallucinationBlocked)
	}
	if m.response_flagged != nil {
		fields = append(fields, conversationturn.FieldResponseFlagged)
	}
	if m.constraints_delta != nil {
		fields = append(fields, conversationturn.FieldConstraintsDelta)
	}
	if m.created_at != nil {
		fields = append(fields, conversationturn.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationTurnMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationturn.FieldSessionID:
		return m.SessionID()
	case conversationturn.FieldClinicID:
		return m.ClinicID()
	case conversationturn.FieldSequenceNumber:
		return m.SequenceNumber()
	case conversationturn.FieldUserMessage:
		return m.UserMessage()
	case conversationturn.FieldAssistantMessage:
		return m.AssistantMessage()
	case conversationturn.FieldLane:
		return m.Lane()
	case conversationturn.FieldFastPath:
		return m.FastPath()
	case conversationturn.FieldLatencyMs:
		return m.LatencyMs()
	case conversationturn.FieldToolsCalled:
		return m.ToolsCalled()
	case conversationturn.FieldHallucinationBlocked:
		return m.HallucinationBlocked()
	case conversationturn.FieldResponseFlagged:
		return m.ResponseFlagged()
	case conversationturn.FieldConstraintsDelta:
		return m.ConstraintsDelta()
	case conversationturn.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationTurnMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationturn.FieldSessionID:
		return m.OldSessionID(ctx)
	case conversationturn.FieldClinicID:
		return m.OldClinicID(ctx)
	case conversationturn.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case conversationturn.FieldUserMessage:
		return m.OldUserMessage(ctx)
	case conversationturn.FieldAssistantMessage:
		return m.OldAssistantMessage(ctx)
	case conversationturn.FieldLane:
		return m.OldLane(ctx)
	case conversationturn.FieldFastPath:
		return m.OldFastPath(ctx)
	case conversationturn.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case conversationturn.FieldToolsCalled:
		return m.OldToolsCalled(ctx)
	case conversationturn.FieldHallucinationBlocked:
		return m.OldHallucinationBlocked(ctx)
	case conversationturn.FieldResponseFlagged:
		return m.OldResponseFlagged(ctx)
	case conversationturn.FieldConstraintsDelta:
		return m.OldConstraintsDelta(ctx)
	case conversationturn.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationTurn field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationTurnMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationturn.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case conversationturn.FieldClinicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case conversationturn.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case conversationturn.FieldUserMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserMessage(v)
		return nil
	case conversationturn.FieldAssistantMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssistantMessage(v)
		return nil
	case conversationturn.FieldLane:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLane(v)
		return nil
	case conversationturn.FieldFastPath:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFastPath(v)
		return nil
	case conversationturn.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case conversationturn.FieldToolsCalled:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolsCalled(v)
		return nil
	case conversationturn.FieldHallucinationBlocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHallucinationBlocked(v)
		return nil
	case conversationturn.FieldResponseFlagged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseFlagged(v)
		return nil
	case conversationturn.FieldConstraintsDelta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraintsDelta(v)
		return nil
	case conversationturn.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationTurn field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationTurnMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, conversationturn.FieldSequenceNumber)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, conversationturn.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationTurnMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversationturn.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	case conversationturn.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationTurnMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversationturn.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	case conversationturn.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationTurn numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationTurnMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversationturn.FieldAssistantMessage) {
		fields = append(fields, conversationturn.FieldAssistantMessage)
	}
	if m.FieldCleared(conversationturn.FieldLane) {
		fields = append(fields, conversationturn.FieldLane)
	}
	if m.FieldCleared(conversationturn.FieldLatencyMs) {
		fields = append(fields, conversationturn.FieldLatencyMs)
	}
	if m.FieldCleared(conversationturn.FieldToolsCalled) {
		fields = append(fields, conversationturn.FieldToolsCalled)
	}
	if m.FieldCleared(conversationturn.FieldConstraintsDelta) {
		fields = append(fields, conversationturn.FieldConstraintsDelta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationTurnMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationTurnMutation) ClearField(name string) error {
	switch name {
	case conversationturn.FieldAssistantMessage:
		m.ClearAssistantMessage()
		return nil
	case conversationturn.FieldLane:
		m.ClearLane()
		return nil
	case conversationturn.FieldLatencyMs:
		m.ClearLatencyMs()
		return nil
	case conversationturn.FieldToolsCalled:
		m.ClearToolsCalled()
		return nil
	case conversationturn.FieldConstraintsDelta:
		m.ClearConstraintsDelta()
		return nil
	}
	return fmt.Errorf("unknown ConversationTurn nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationTurnMutation) ResetField(name string) error {
	switch name {
	case conversationturn.FieldSessionID:
		m.ResetSessionID()
		return nil
	case conversationturn.FieldClinicID:
		m.ResetClinicID()
		return nil
	case conversationturn.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case conversationturn.FieldUserMessage:
		m.ResetUserMessage()
		return nil
	case conversationturn.FieldAssistantMessage:
		m.ResetAssistantMessage()
		return nil
	case conversationturn.FieldLane:
		m.ResetLane()
		return nil
	case conversationturn.FieldFastPath:
		m.ResetFastPath()
		return nil
	case conversationturn.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case conversationturn.FieldToolsCalled:
		m.ResetToolsCalled()
		return nil
	case conversationturn.FieldHallucinationBlocked:
		m.ResetHallucinationBlocked()
		return nil
	case conversationturn.FieldResponseFlagged:
		m.ResetResponseFlagged()
		return nil
	case conversationturn.FieldConstraintsDelta:
		m.ResetConstraintsDelta()
		return nil
	case conversationturn.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationTurn field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationTurnMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, conversationturn.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationTurnMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversationturn.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationTurnMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationTurnMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationTurnMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, conversationturn.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationTurnMutation) EdgeCleared(name string) bool {
	switch name {
	case conversationturn.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationTurnMutation) ClearEdge(name string) error {
	switch name {
	case conversationturn.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ConversationTurn unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationTurnMutation) ResetEdge(name string) error {
	switch name {
	case conversationturn.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ConversationTurn edge %s", name)
}

// EscalationMutation represents an operation that mutates the Escalation nodes in the graph.
type EscalationMutation struct {
	config
	op                Op
	typ               string
	id                *string
	clinic_id         *string
	patient_id        *string
	service_id        *string
	status            *escalation.Status
	reason            *string
	request           *map[string]interface{}
	suggestions       *[]map[string]interface{}
	appendsuggestions []map[string]interface{}
	sla_deadline      *time.Time
	assigned_to       *string
	resolution        *map[string]interface{}
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Escalation, error)
	predicates        []predicate.Escalation
}

var _ ent.Mutation = (*EscalationMutation)(nil)

// escalationOption allows management of the mutation configuration using functional options.
type escalationOption func(*EscalationMutation)

// newEscalationMutation creates new mutation for the Escalation entity.
func newEscalationMutation(c config, op Op, opts ...escalationOption) *EscalationMutation {
	m := &EscalationMutation{
		config:        c,
		op:            op,
		typ:           TypeEscalation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEscalationID sets the ID field of the mutation.
func withEscalationID(id string) escalationOption {
	return func(m *EscalationMutation) {
		var (
			err   error
			once  sync.Once
			value *Escalation
		)
		m.oldValue = func(ctx context.Context) (*Escalation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Escalation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEscalation sets the old Escalation of the mutation.
func withEscalation(node *Escalation) escalationOption {
	return func(m *EscalationMutation) {
		m.oldValue = func(context.Context) (*Escalation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EscalationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EscalationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Escalation entities.
func (m *EscalationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EscalationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EscalationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Escalation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClinicID sets the "clinic_id" field.
func (m *EscalationMutation) SetClinicID(s string) {
	m.clinic_id = &s
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *EscalationMutation) ClinicID() (r string, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldClinicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *EscalationMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *EscalationMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *EscalationMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *EscalationMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetServiceID sets the "service_id" field.
func (m *EscalationMutation) SetServiceID(s string) {
	m.service_id = &s
}

// ServiceID returns the value of the "service_id" field in the mutation.
func (m *EscalationMutation) ServiceID() (r string, exists bool) {
	v := m.service_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceID returns the old "service_id" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldServiceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceID: %w", err)
	}
	return oldValue.ServiceID, nil
}

// ClearServiceID clears the value of the "service_id" field.
func (m *EscalationMutation) ClearServiceID() {
	m.service_id = nil
	m.clearedFields[escalation.FieldServiceID] = struct{}{}
}

// ServiceIDCleared returns if the "service_id" field was cleared in this mutation.
func (m *EscalationMutation) ServiceIDCleared() bool {
	_, ok := m.clearedFields[escalation.FieldServiceID]
	return ok
}

// ResetServiceID resets all changes to the "service_id" field.
func (m *EscalationMutation) ResetServiceID() {
	m.service_id = nil
	delete(m.clearedFields, escalation.FieldServiceID)
}

// SetStatus sets the "status" field.
func (m *EscalationMutation) SetStatus(e escalation.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EscalationMutation) Status() (r escalation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldStatus(ctx context.Context) (v escalation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EscalationMutation) ResetStatus() {
	m.status = nil
}

// SetReason sets the "reason" field.
func (m *EscalationMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *EscalationMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *EscalationMutation) ResetReason() {
	m.reason = nil
}

// SetRequest sets the "request" field.
func (m *EscalationMutation) SetRequest(value map[string]interface{}) {
	m.request = &value
}

// Request returns the value of the "request" field in the mutation.
func (m *EscalationMutation) Request() (r map[string]interface{}, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequest returns the old "request" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldRequest(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequest: %w", err)
	}
	return oldValue.Request, nil
}

// ResetRequest resets all changes to the "request" field.
func (m *EscalationMutation) ResetRequest() {
	m.request = nil
}

// SetSuggestions sets the "suggestions" field.
func (m *EscalationMutation) SetSuggestions(value []map[string]interface{}) {
	m.suggestions = &value
	m.appendsuggestions = nil
}

// Suggestions returns the value of the "suggestions" field in the mutation.
func (m *EscalationMutation) Suggestions() (r []map[string]interface{}, exists bool) {
	v := m.suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestions returns the old "suggestions" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldSuggestions(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestions: %w", err)
	}
	return oldValue.Suggestions, nil
}

// AppendSuggestions adds value to the "suggestions" field.
func (m *EscalationMutation) AppendSuggestions(value []map[string]interface{}) {
	m.appendsuggestions = append(m.appendsuggestions, value...)
}

// AppendedSuggestions returns the list of values that were appended to the "suggestions" field in this mutation.
func (m *EscalationMutation) AppendedSuggestions() ([]map[string]interface{}, bool) {
	if len(m.appendsuggestions) == 0 {
		return nil, false
	}
	return m.appendsuggestions, true
}

// ClearSuggestions clears the value of the "suggestions" field.
func (m *EscalationMutation) ClearSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	m.clearedFields[escalation.FieldSuggestions] = struct{}{}
}

// SuggestionsCleared returns if the "suggestions" field was cleared in this mutation.
func (m *EscalationMutation) SuggestionsCleared() bool {
	_, ok := m.clearedFields[escalation.FieldSuggestions]
	return ok
}

// ResetSuggestions resets all changes to the "suggestions" field.
func (m *EscalationMutation) ResetSuggestions() {
	m.suggestions = nil
	m.appendsuggestions = nil
	delete(m.clearedFields, escalation.FieldSuggestions)
}

// SetSLADeadline sets the "sla_deadline" field.
func (m *EscalationMutation) SetSLADeadline(t time.Time) {
	m.sla_deadline = &t
}

// SLADeadline returns the value of the "sla_deadline" field in the mutation.
func (m *EscalationMutation) SLADeadline() (r time.Time, exists bool) {
	v := m.sla_deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldSLADeadline returns the old "sla_deadline" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldSLADeadline(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSLADeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSLADeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSLADeadline: %w", err)
	}
	return oldValue.SLADeadline, nil
}

// ResetSLADeadline resets all changes to the "sla_deadline" field.
func (m *EscalationMutation) ResetSLADeadline() {
	m.sla_deadline = nil
}

// SetAssignedTo sets the "assigned_to" field.
func (m *EscalationMutation) SetAssignedTo(s string) {
	m.assigned_to = &s
}

// AssignedTo returns the value of the "assigned_to" field in the mutation.
func (m *EscalationMutation) AssignedTo() (r string, exists bool) {
	v := m.assigned_to
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedTo returns the old "assigned_to" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldAssignedTo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedTo: %w", err)
	}
	return oldValue.AssignedTo, nil
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (m *EscalationMutation) ClearAssignedTo() {
	m.assigned_to = nil
	m.clearedFields[escalation.FieldAssignedTo] = struct{}{}
}

// AssignedToCleared returns if the "assigned_to" field was cleared in this mutation.
func (m *EscalationMutation) AssignedToCleared() bool {
	_, ok := m.clearedFields[escalation.FieldAssignedTo]
	return ok
}

// ResetAssignedTo resets all changes to the "assigned_to" field.
func (m *EscalationMutation) ResetAssignedTo() {
	m.assigned_to = nil
	delete(m.clearedFields, escalation.FieldAssignedTo)
}

// SetResolution sets the "resolution" field.
func (m *EscalationMutation) SetResolution(value map[string]interface{}) {
	m.resolution = &value
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *EscalationMutation) Resolution() (r map[string]interface{}, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldResolution(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ClearResolution clears the value of the "resolution" field.
func (m *EscalationMutation) ClearResolution() {
	m.resolution = nil
	m.clearedFields[escalation.FieldResolution] = struct{}{}
}

// ResolutionCleared returns if the "resolution" field was cleared in this mutation.
func (m *EscalationMutation) ResolutionCleared() bool {
	_, ok := m.clearedFields[escalation.FieldResolution]
	return ok
}

// ResetResolution resets all changes to the "resolution" field.
func (m *EscalationMutation) ResetResolution() {
	m.resolution = nil
	delete(m.clearedFields, escalation.FieldResolution)
}

// SetCreatedAt sets the "created_at" field.
func (m *EscalationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EscalationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EscalationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EscalationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EscalationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Escalation entity.
// If the Escalation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EscalationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the EscalationMutation builder.
func (m *EscalationMutation) Where(ps ...predicate.Escalation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EscalationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EscalationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Escalation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EscalationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EscalationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Escalation).
func (m *EscalationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EscalationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.clinic_id != nil {
		fields = append(fields, escalation.FieldClinicID)
	}
	if m.patient_id != nil {
		fields = append(fields, escalation.FieldPatientID)
	}
	if m.service_id != nil {
		fields = append(fields, escalation.FieldServiceID)
	}
	if m.status != nil {
		fields = append(fields, escalation.FieldStatus)
	}
	if m.reason != nil {
		fields = append(fields, escalation.FieldReason)
	}
	if m.request != nil {
		fields = append(fields, escalation.FieldRequest)
	}
	if m.suggestions != nil {
		fields = append(fields, escalation.FieldSuggestions)
	}
	if m.sla_deadline != nil {
		fields = append(fields, escalation.FieldSLADeadline)
	}
	if m.assigned_to != nil {
		fields = append(fields, escalation.FieldAssignedTo)
	}
	if m.resolution != nil {
		fields = append(fields, escalation.FieldResolution)
	}
	if m.created_at != nil {
		fields = append(fields, escalation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, escalation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EscalationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case escalation.FieldClinicID:
		return m.ClinicID()
	case escalation.FieldPatientID:
		return m.PatientID()
	case escalation.FieldServiceID:
		return m.ServiceID()
	case escalation.FieldStatus:
		return m.Status()
	case escalation.FieldReason:
		return m.Reason()
	case escalation.FieldRequest:
		return m.Request()
	case escalation.FieldSuggestions:
		return m.Suggestions()
	case escalation.FieldSLADeadline:
		return m.SLADeadline()
	case escalation.FieldAssignedTo:
		return m.AssignedTo()
	case escalation.FieldResolution:
		return m.Resolution()
	case escalation.FieldCreatedAt:
		return m.CreatedAt()
	case escalation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EscalationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case escalation.FieldClinicID:
		return m.OldClinicID(ctx)
	case escalation.FieldPatientID:
		return m.OldPatientID(ctx)
	case escalation.FieldServiceID:
		return m.OldServiceID(ctx)
	case escalation.FieldStatus:
		return m.OldStatus(ctx)
	case escalation.FieldReason:
		return m.OldReason(ctx)
	case escalation.FieldRequest:
		return m.OldRequest(ctx)
	case escalation.FieldSuggestions:
		return m.OldSuggestions(ctx)
	case escalation.FieldSLADeadline:
		return m.OldSLADeadline(ctx)
	case escalation.FieldAssignedTo:
		return m.OldAssignedTo(ctx)
	case escalation.FieldResolution:
		return m.OldResolution(ctx)
	case escalation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case escalation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Escalation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EscalationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case escalation.FieldClinicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case escalation.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case escalation.FieldServiceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceID(v)
		return nil
	case escalation.FieldStatus:
		v, ok := value.(escalation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case escalation.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case escalation.FieldRequest:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequest(v)
		return nil
	case escalation.FieldSuggestions:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestions(v)
		return nil
	case escalation.FieldSLADeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSLADeadline(v)
		return nil
	case escalation.FieldAssignedTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedTo(v)
		return nil
	case escalation.FieldResolution:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case escalation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case escalation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Escalation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EscalationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EscalationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EscalationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Escalation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EscalationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(escalation.FieldServiceID) {
		fields = append(fields, escalation.FieldServiceID)
	}
	if m.FieldCleared(escalation.FieldSuggestions) {
		fields = append(fields, escalation.FieldSuggestions)
	}
	if m.FieldCleared(escalation.FieldAssignedTo) {
		fields = append(fields, escalation.FieldAssignedTo)
	}
	if m.FieldCleared(escalation.FieldResolution) {
		fields = append(fields, escalation.FieldResolution)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EscalationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EscalationMutation) ClearField(name string) error {
	switch name {
	case escalation.FieldServiceID:
		m.ClearServiceID()
		return nil
	case escalation.FieldSuggestions:
		m.ClearSuggestions()
		return nil
	case escalation.FieldAssignedTo:
		m.ClearAssignedTo()
		return nil
	case escalation.FieldResolution:
		m.ClearResolution()
		return nil
	}
	return fmt.Errorf("unknown Escalation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EscalationMutation) ResetField(name string) error {
	switch name {
	case escalation.FieldClinicID:
		m.ResetClinicID()
		return nil
	case escalation.FieldPatientID:
		m.ResetPatientID()
		return nil
	case escalation.FieldServiceID:
		m.ResetServiceID()
		return nil
	case escalation.FieldStatus:
		m.ResetStatus()
		return nil
	case escalation.FieldReason:
		m.ResetReason()
		return nil
	case escalation.FieldRequest:
		m.ResetRequest()
		return nil
	case escalation.FieldSuggestions:
		m.ResetSuggestions()
		return nil
	case escalation.FieldSLADeadline:
		m.ResetSLADeadline()
		return nil
	case escalation.FieldAssignedTo:
		m.ResetAssignedTo()
		return nil
	case escalation.FieldResolution:
		m.ResetResolution()
		return nil
	case escalation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case escalation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Escalation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EscalationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EscalationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EscalationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EscalationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EscalationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EscalationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EscalationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Escalation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EscalationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Escalation edge %s", name)
}

// HoldMutation represents an operation that mutates the Hold nodes in the graph.
type HoldMutation struct {
	config
	op             Op
	typ            string
	id             *string
	client_hold_id *string
	clinic_id      *string
	patient_id     *string
	doctor_id      *string
	room_id        *string
	service_id     *string
	start_time     *time.Time
	end_time       *time.Time
	score          *float64
	addscore       *float64
	expires_at     *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Hold, error)
	predicates     []predicate.Hold
}

var _ ent.Mutation = (*HoldMutation)(nil)

// holdOption allows management of the mutation configuration using functional options.
type holdOption func(*HoldMutation)

// newHoldMutation creates new mutation for the Hold entity.
func newHoldMutation(c config, op Op, opts ...holdOption) *HoldMutation {
	m := &HoldMutation{
		config:        c,
		op:            op,
		typ:           TypeHold,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHoldID sets the ID field of the mutation.
func withHoldID(id string) holdOption {
	return func(m *HoldMutation) {
		var (
			err   error
			once  sync.Once
			value *Hold
		)
		m.oldValue = func(ctx context.Context) (*Hold, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Hold.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHold sets the old Hold of the mutation.
func withHold(node *Hold) holdOption {
	return func(m *HoldMutation) {
		m.oldValue = func(context.Context) (*Hold, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HoldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HoldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Hold entities.
func (m *HoldMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HoldMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HoldMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Hold.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientHoldID sets the "client_hold_id" field.
func (m *HoldMutation) SetClientHoldID(s string) {
	m.client_hold_id = &s
}

// ClientHoldID returns the value of the "client_hold_id" field in the mutation.
func (m *HoldMutation) ClientHoldID() (r string, exists bool) {
	v := m.client_hold_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientHoldID returns the old "client_hold_id" field's value of the Hold entity.
// If the Hold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HoldMutation) OldClientHoldID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientHoldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientHoldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientHoldID: %w", err)
	}
	return oldValue.ClientHoldID, nil
}

// ResetClientHoldID resets all changes to the "client_hold_id" field.
func (m *HoldMutation) ResetClientHoldID() {
	m.client_hold_id = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *HoldMutation) SetClinicID(s string) {
	m.clinic_id = &s
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *HoldMutation) ClinicID() (r string, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Hold entity.
// If the Hold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HoldMutation) OldClinicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *HoldMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetPatientID sets the "patient_id" field.
func (m *HoldMutation) SetPatientID(s string) {
	m.patient_id = &s
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *HoldMutation) PatientID() (r string, exists bool) {
	v := m.patient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the Hold entity.
// If the Hold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HoldMutation) OldPatientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *HoldMutation) ResetPatientID() {
	m.patient_id = nil
}

// SetDoctorID sets the "doctor_id" field.
func (m *HoldMutation) SetDoctorID(s string) {
	m.doctor_id = &s
}

// DoctorID returns the value of the "doctor_id" field in the mutation.
func (m *HoldMutation) DoctorID() (r string, exists bool) {
	v := m.doctor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorID returns the old "doctor_id" field's value of the Hold entity.
// If the Hold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HoldMutation) OldDoctorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorID: %w", err)
	}
	return oldValue.DoctorID, nil
}

// ResetDoctorID resets all changes to the "doctor_id" field.
func (m *HoldMutation) ResetDoctorID() {
	m.doctor_id = nil
}

// SetRoomID sets the "room_id" field.
func (m *HoldMutation) SetRoomID(s string) {
	m.room_id = &s
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *HoldMutation) RoomID() (r string, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Hold entity.
// If the Hold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HoldMutation) OldRoomID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *HoldMutation) ResetRoomID() {
	m.room_id = nil
}

// SetServiceID sets the "service_id" field.
func (m *HoldMutation) SetServiceID(s string) {
	m.service_id = &s
}

// ServiceID returns the value of the "service_id" field in the mutation.
func (m *HoldMutation) ServiceID() (r string, exists bool) {
	v := m.service_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceID returns the old "service_id" field's value of the Hold entity.
// If the Hold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HoldMutation) OldServiceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceID: %w", err)
	}
	return oldValue.ServiceID, nil
}

// ResetServiceID resets all changes to the "service_id" field.
func (m *HoldMutation) ResetServiceID() {
	m.service_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *HoldMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *HoldMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Hold entity.
// If the Hold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HoldMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *HoldMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *HoldMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *HoldMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Hold entity.
// If the Hold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HoldMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *HoldMutation) ResetEndTime() {
	m.end_time = nil
}

// SetScore sets the "score" field.
func (m *HoldMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *HoldMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Hold entity.
// If the Hold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HoldMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *HoldMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *HoldMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *HoldMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[hold.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *HoldMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[hold.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *HoldMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, hold.FieldScore)
}

// SetExpiresAt sets the "expires_at" field.
func (m *HoldMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *HoldMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Hold entity.
// If the Hold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HoldMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *HoldMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HoldMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HoldMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Hold entity.
// If the Hold object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HoldMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HoldMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the HoldMutation builder.
func (m *HoldMutation) Where(ps ...predicate.Hold) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HoldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HoldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Hold, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HoldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HoldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Hold).
func (m *HoldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HoldMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.client_hold_id != nil {
		fields = append(fields, hold.FieldClientHoldID)
	}
	if m.clinic_id != nil {
		fields = append(fields, hold.FieldClinicID)
	}
	if m.patient_id != nil {
		fields = append(fields, hold.FieldPatientID)
	}
	if m.doctor_id != nil {
		fields = append(fields, hold.FieldDoctorID)
	}
	if m.room_id != nil {
		fields = append(fields, hold.FieldRoomID)
	}
	if m.service_id != nil {
		fields = append(fields, hold.FieldServiceID)
	}
	if m.start_time != nil {
		fields = append(fields, hold.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, hold.FieldEndTime)
	}
	if m.score != nil {
		fields = append(fields, hold.FieldScore)
	}
	if m.expires_at != nil {
		fields = append(fields, hold.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, hold.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HoldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hold.FieldClientHoldID:
		return m.ClientHoldID()
	case hold.FieldClinicID:
		return m.ClinicID()
	case hold.FieldPatientID:
		return m.PatientID()
	case hold.FieldDoctorID:
		return m.DoctorID()
	case hold.FieldRoomID:
		return m.RoomID()
	case hold.FieldServiceID:
		return m.ServiceID()
	case hold.FieldStartTime:
		return m.StartTime()
	case hold.FieldEndTime:
		return m.EndTime()
	case hold.FieldScore:
		return m.Score()
	case hold.FieldExpiresAt:
		return m.ExpiresAt()
	case hold.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HoldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hold.FieldClientHoldID:
		return m.OldClientHoldID(ctx)
	case hold.FieldClinicID:
		return m.OldClinicID(ctx)
	case hold.FieldPatientID:
		return m.OldPatientID(ctx)
	case hold.FieldDoctorID:
		return m.OldDoctorID(ctx)
	case hold.FieldRoomID:
		return m.OldRoomID(ctx)
	case hold.FieldServiceID:
		return m.OldServiceID(ctx)
	case hold.FieldStartTime:
		return m.OldStartTime(ctx)
	case hold.FieldEndTime:
		return m.OldEndTime(ctx)
	case hold.FieldScore:
		return m.OldScore(ctx)
	case hold.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case hold.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Hold field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HoldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hold.FieldClientHoldID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientHoldID(v)
		return nil
	case hold.FieldClinicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case hold.FieldPatientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case hold.FieldDoctorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorID(v)
		return nil
	case hold.FieldRoomID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case hold.FieldServiceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceID(v)
		return nil
	case hold.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case hold.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case hold.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case hold.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case hold.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Hold field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HoldMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, hold.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HoldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hold.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HoldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hold.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Hold numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HoldMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hold.FieldScore) {
		fields = append(fields, hold.FieldScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HoldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HoldMutation) ClearField(name string) error {
	switch name {
	case hold.FieldScore:
		m.ClearScore()
		return nil
	}
	return fmt.Errorf("unknown Hold nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HoldMutation) ResetField(name string) error {
	switch name {
	case hold.FieldClientHoldID:
		m.ResetClientHoldID()
		return nil
	case hold.FieldClinicID:
		m.ResetClinicID()
		return nil
	case hold.FieldPatientID:
		m.ResetPatientID()
		return nil
	case hold.FieldDoctorID:
		m.ResetDoctorID()
		return nil
	case hold.FieldRoomID:
		m.ResetRoomID()
		return nil
	case hold.FieldServiceID:
		m.ResetServiceID()
		return nil
	case hold.FieldStartTime:
		m.ResetStartTime()
		return nil
	case hold.FieldEndTime:
		m.ResetEndTime()
		return nil
	case hold.FieldScore:
		m.ResetScore()
		return nil
	case hold.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case hold.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Hold field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HoldMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HoldMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HoldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HoldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HoldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HoldMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HoldMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Hold unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HoldMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Hold edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	clinic_id               *string
	phone                   *string
	first_name              *string
	last_name               *string
	preferred_language      *string
	hard_doctor_bans        *[]string
	appendhard_doctor_bans  []string
	hard_service_bans       *[]string
	appendhard_service_bans []string
	allergies               *[]string
	appendallergies         []string
	preferences             *map[string]interface{}
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Patient, error)
	predicates              []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id string) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClinicID sets the "clinic_id" field.
func (m *PatientMutation) SetClinicID(s string) {
	m.clinic_id = &s
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *PatientMutation) ClinicID() (r string, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldClinicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *PatientMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetPhone sets the "phone" field.
func (m *PatientMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *PatientMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *PatientMutation) ResetPhone() {
	m.phone = nil
}

// SetFirstName sets the "first_name" field.
func (m *PatientMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *PatientMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *PatientMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[patient.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *PatientMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[patient.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *PatientMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, patient.FieldFirstName)
}

// SetLastName sets the "last_name" field.
func (m *PatientMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *PatientMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ClearLastName clears the value of the "last_name" field.
func (m *PatientMutation) ClearLastName() {
	m.last_name = nil
	m.clearedFields[patient.FieldLastName] = struct{}{}
}

// LastNameCleared returns if the "last_name" field was cleared in this mutation.
func (m *PatientMutation) LastNameCleared() bool {
	_, ok := m.clearedFields[patient.FieldLastName]
	return ok
}

// ResetLastName resets all changes to the "last_name" field.
func (m *PatientMutation) ResetLastName() {
	m.last_name = nil
	delete(m.clearedFields, patient.FieldLastName)
}

// SetPreferredLanguage sets the "preferred_language" field.
func (m *PatientMutation) SetPreferredLanguage(s string) {
	m.preferred_language = &s
}

// PreferredLanguage returns the value of the "preferred_language" field in the mutation.
func (m *PatientMutation) PreferredLanguage() (r string, exists bool) {
	v := m.preferred_language
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredLanguage returns the old "preferred_language" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPreferredLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredLanguage: %w", err)
	}
	return oldValue.PreferredLanguage, nil
}

// ClearPreferredLanguage clears the value of the "preferred_language" field.
func (m *PatientMutation) ClearPreferredLanguage() {
	m.preferred_language = nil
	m.clearedFields[patient.FieldPreferredLanguage] = struct{}{}
}

// PreferredLanguageCleared returns if the "preferred_language" field was cleared in this mutation.
func (m *PatientMutation) PreferredLanguageCleared() bool {
	_, ok := m.clearedFields[patient.FieldPreferredLanguage]
	return ok
}

// ResetPreferredLanguage resets all changes to the "preferred_language" field.
func (m *PatientMutation) ResetPreferredLanguage() {
	m.preferred_language = nil
	delete(m.clearedFields, patient.FieldPreferredLanguage)
}

// SetHardDoctorBans sets the "hard_doctor_bans" field.
func (m *PatientMutation) SetHardDoctorBans(s []string) {
	m.hard_doctor_bans = &s
	m.appendhard_doctor_bans = nil
}

// HardDoctorBans returns the value of the "hard_doctor_bans" field in the mutation.
func (m *PatientMutation) HardDoctorBans() (r []string, exists bool) {
	v := m.hard_doctor_bans
	if v == nil {
		return
	}
	return *v, true
}

// OldHardDoctorBans returns the old "hard_doctor_bans" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldHardDoctorBans(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHardDoctorBans is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHardDoctorBans requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHardDoctorBans: %w", err)
	}
	return oldValue.HardDoctorBans, nil
}

// AppendHardDoctorBans adds s to the "hard_doctor_bans" field.
func (m *PatientMutation) AppendHardDoctorBans(s []string) {
	m.appendhard_doctor_bans = append(m.appendhard_doctor_bans, s...)
}

// AppendedHardDoctorBans returns the list of values that were appended to the "hard_doctor_bans" field in this mutation.
func (m *PatientMutation) AppendedHardDoctorBans() ([]string, bool) {
	if len(m.appendhard_doctor_bans) == 0 {
		return nil, false
	}
	return m.appendhard_doctor_bans, true
}

// ClearHardDoctorBans clears the value of the "hard_doctor_bans" field.
func (m *PatientMutation) ClearHardDoctorBans() {
	m.hard_doctor_bans = nil
	m.appendhard_doctor_bans = nil
	m.clearedFields[patient.FieldHardDoctorBans] = struct{}{}
}

// HardDoctorBansCleared returns if the "hard_doctor_bans" field was cleared in this mutation.
func (m *PatientMutation) HardDoctorBansCleared() bool {
	_, ok := m.clearedFields[patient.FieldHardDoctorBans]
	return ok
}

// ResetHardDoctorBans resets all changes to the "hard_doctor_bans" field.
func (m *PatientMutation) ResetHardDoctorBans() {
	m.hard_doctor_bans = nil
	m.appendhard_doctor_bans = nil
	delete(m.clearedFields, patient.FieldHardDoctorBans)
}

// SetHardServiceBans sets the "hard_service_bans" field.
func (m *PatientMutation) SetHardServiceBans(s []string) {
	m.hard_service_bans = &s
	m.appendhard_service_bans = nil
}

// HardServiceBans returns the value of the "hard_service_bans" field in the mutation.
func (m *PatientMutation) HardServiceBans() (r []string, exists bool) {
	v := m.hard_service_bans
	if v == nil {
		return
	}
	return *v, true
}

// OldHardServiceBans returns the old "hard_service_bans" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldHardServiceBans(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHardServiceBans is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHardServiceBans requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHardServiceBans: %w", err)
	}
	return oldValue.HardServiceBans, nil
}

// AppendHardServiceBans adds s to the "hard_service_bans" field.
func (m *PatientMutation) AppendHardServiceBans(s []string) {
	m.appendhard_service_bans = append(m.appendhard_service_bans, s...)
}

// AppendedHardServiceBans returns the list of values that were appended to the "hard_service_bans" field in this mutation.
func (m *PatientMutation) AppendedHardServiceBans() ([]string, bool) {
	if len(m.appendhard_service_bans) == 0 {
		return nil, false
	}
	return m.appendhard_service_bans, true
}

// ClearHardServiceBans clears the value of the "hard_service_bans" field.
func (m *PatientMutation) ClearHardServiceBans() {
	m.hard_service_bans = nil
	m.appendhard_service_bans = nil
	m.clearedFields[patient.FieldHardServiceBans] = struct{}{}
}

// HardServiceBansCleared returns if the "hard_service_bans" field was cleared in this mutation.
func (m *PatientMutation) HardServiceBansCleared() bool {
	_, ok := m.clearedFields[patient.FieldHardServiceBans]
	return ok
}

// ResetHardServiceBans resets all changes to the "hard_service_bans" field.
func (m *PatientMutation) ResetHardServiceBans() {
	m.hard_service_bans = nil
	m.appendhard_service_bans = nil
	delete(m.clearedFields, patient.FieldHardServiceBans)
}

// SetAllergies sets the "allergies" field.
func (m *PatientMutation) SetAllergies(s []string) {
	m.allergies = &s
	m.appendallergies = nil
}

// Allergies returns the value of the "allergies" field in the mutation.
func (m *PatientMutation) Allergies() (r []string, exists bool) {
	v := m.allergies
	if v == nil {
		return
	}
	return *v, true
}

// OldAllergies returns the old "allergies" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldAllergies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllergies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllergies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllergies: %w", err)
	}
	return oldValue.Allergies, nil
}

// AppendAllergies adds s to the "allergies" field.
func (m *PatientMutation) AppendAllergies(s []string) {
	m.appendallergies = append(m.appendallergies, s...)
}

// AppendedAllergies returns the list of values that were appended to the "allergies" field in this mutation.
func (m *PatientMutation) AppendedAllergies() ([]string, bool) {
	if len(m.appendallergies) == 0 {
		return nil, false
	}
	return m.appendallergies, true
}

// ClearAllergies clears the value of the "allergies" field.
func (m *PatientMutation) ClearAllergies() {
	m.allergies = nil
	m.appendallergies = nil
	m.clearedFields[patient.FieldAllergies] = struct{}{}
}

// AllergiesCleared returns if the "allergies" field was cleared in this mutation.
func (m *PatientMutation) AllergiesCleared() bool {
	_, ok := m.clearedFields[patient.FieldAllergies]
	return ok
}

// ResetAllergies resets all changes to the "allergies" field.
func (m *PatientMutation) ResetAllergies() {
	m.allergies = nil
	m.appendallergies = nil
	delete(m.clearedFields, patient.FieldAllergies)
}

// SetPreferences sets the "preferences" field.
func (m *PatientMutation) SetPreferences(value map[string]interface{}) {
	m.preferences = &value
}

// Preferences returns the value of the "preferences" field in the mutation.
func (m *PatientMutation) Preferences() (r map[string]interface{}, exists bool) {
	v := m.preferences
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferences returns the old "preferences" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPreferences(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferences: %w", err)
	}
	return oldValue.Preferences, nil
}

// ClearPreferences clears the value of the "preferences" field.
func (m *PatientMutation) ClearPreferences() {
	m.preferences = nil
	m.clearedFields[patient.FieldPreferences] = struct{}{}
}

// PreferencesCleared returns if the "preferences" field was cleared in this mutation.
func (m *PatientMutation) PreferencesCleared() bool {
	_, ok := m.clearedFields[patient.FieldPreferences]
	return ok
}

// ResetPreferences resets all changes to the "preferences" field.
func (m *PatientMutation) ResetPreferences() {
	m.preferences = nil
	delete(m.clearedFields, patient.FieldPreferences)
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.clinic_id != nil {
		fields = append(fields, patient.FieldClinicID)
	}
	if m.phone != nil {
		fields = append(fields, patient.FieldPhone)
	}
	if m.first_name != nil {
		fields = append(fields, patient.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, patient.FieldLastName)
	}
	if m.preferred_language != nil {
		fields = append(fields, patient.FieldPreferredLanguage)
	}
	if m.hard_doctor_bans != nil {
		fields = append(fields, patient.FieldHardDoctorBans)
	}
	if m.hard_service_bans != nil {
		fields = append(fields, patient.FieldHardServiceBans)
	}
	if m.allergies != nil {
		fields = append(fields, patient.FieldAllergies)
	}
	if m.preferences != nil {
		fields = append(fields, patient.FieldPreferences)
	}
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldClinicID:
		return m.ClinicID()
	case patient.FieldPhone:
		return m.Phone()
	case patient.FieldFirstName:
		return m.FirstName()
	case patient.FieldLastName:
		return m.LastName()
	case patient.FieldPreferredLanguage:
		return m.PreferredLanguage()
	case patient.FieldHardDoctorBans:
		return m.HardDoctorBans()
	case patient.FieldHardServiceBans:
		return m.HardServiceBans()
	case patient.FieldAllergies:
		return m.Allergies()
	case patient.FieldPreferences:
		return m.Preferences()
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldClinicID:
		return m.OldClinicID(ctx)
	case patient.FieldPhone:
		return m.OldPhone(ctx)
	case patient.FieldFirstName:
		return m.OldFirstName(ctx)
	case patient.FieldLastName:
		return m.OldLastName(ctx)
	case patient.FieldPreferredLanguage:
		return m.OldPreferredLanguage(ctx)
	case patient.FieldHardDoctorBans:
		return m.OldHardDoctorBans(ctx)
	case patient.FieldHardServiceBans:
		return m.OldHardServiceBans(ctx)
	case patient.FieldAllergies:
		return m.OldAllergies(ctx)
	case patient.FieldPreferences:
		return m.OldPreferences(ctx)
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldClinicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case patient.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case patient.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case patient.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case patient.FieldPreferredLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredLanguage(v)
		return nil
	case patient.FieldHardDoctorBans:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHardDoctorBans(v)
		return nil
	case patient.FieldHardServiceBans:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHardServiceBans(v)
		return nil
	case patient.FieldAllergies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllergies(v)
		return nil
	case patient.FieldPreferences:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferences(v)
		return nil
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldFirstName) {
		fields = append(fields, patient.FieldFirstName)
	}
	if m.FieldCleared(patient.FieldLastName) {
		fields = append(fields, patient.FieldLastName)
	}
	if m.FieldCleared(patient.FieldPreferredLanguage) {
		fields = append(fields, patient.FieldPreferredLanguage)
	}
	if m.FieldCleared(patient.FieldHardDoctorBans) {
		fields = append(fields, patient.FieldHardDoctorBans)
	}
	if m.FieldCleared(patient.FieldHardServiceBans) {
		fields = append(fields, patient.FieldHardServiceBans)
	}
	if m.FieldCleared(patient.FieldAllergies) {
		fields = append(fields, patient.FieldAllergies)
	}
	if m.FieldCleared(patient.FieldPreferences) {
		fields = append(fields, patient.FieldPreferences)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldFirstName:
		m.ClearFirstName()
		return nil
	case patient.FieldLastName:
		m.ClearLastName()
		return nil
	case patient.FieldPreferredLanguage:
		m.ClearPreferredLanguage()
		return nil
	case patient.FieldHardDoctorBans:
		m.ClearHardDoctorBans()
		return nil
	case patient.FieldHardServiceBans:
		m.ClearHardServiceBans()
		return nil
	case patient.FieldAllergies:
		m.ClearAllergies()
		return nil
	case patient.FieldPreferences:
		m.ClearPreferences()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldClinicID:
		m.ResetClinicID()
		return nil
	case patient.FieldPhone:
		m.ResetPhone()
		return nil
	case patient.FieldFirstName:
		m.ResetFirstName()
		return nil
	case patient.FieldLastName:
		m.ResetLastName()
		return nil
	case patient.FieldPreferredLanguage:
		m.ResetPreferredLanguage()
		return nil
	case patient.FieldHardDoctorBans:
		m.ResetHardDoctorBans()
		return nil
	case patient.FieldHardServiceBans:
		m.ResetHardServiceBans()
		return nil
	case patient.FieldAllergies:
		m.ResetAllergies()
		return nil
	case patient.FieldPreferences:
		m.ResetPreferences()
		return nil
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Patient edge %s", name)
}

// PolicySnapshotMutation represents an operation that mutates the PolicySnapshot nodes in the graph.
type PolicySnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *string
	clinic_id     *string
	bundle_id     *string
	version       *int
	addversion    *int
	status        *policysnapshot.Status
	sha256        *string
	bundle        *map[string]interface{}
	metadata      *map[string]interface{}
	actor         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PolicySnapshot, error)
	predicates    []predicate.PolicySnapshot
}

var _ ent.Mutation = (*PolicySnapshotMutation)(nil)

// policysnapshotOption allows management of the mutation configuration using functional options.
type policysnapshotOption func(*PolicySnapshotMutation)

// newPolicySnapshotMutation creates new mutation for the PolicySnapshot entity.
func newPolicySnapshotMutation(c config, op Op, opts ...policysnapshotOption) *PolicySnapshotMutation {
	m := &PolicySnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypePolicySnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPolicySnapshotID sets the ID field of the mutation.
func withPolicySnapshotID(id string) policysnapshotOption {
	return func(m *PolicySnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *PolicySnapshot
		)
		m.oldValue = func(ctx context.Context) (*PolicySnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PolicySnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPolicySnapshot sets the old PolicySnapshot of the mutation.
func withPolicySnapshot(node *PolicySnapshot) policysnapshotOption {
	return func(m *PolicySnapshotMutation) {
		m.oldValue = func(context.Context) (*PolicySnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PolicySnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PolicySnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PolicySnapshot entities.
func (m *PolicySnapshotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PolicySnapshotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PolicySnapshotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PolicySnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClinicID sets the "clinic_id" field.
func (m *PolicySnapshotMutation) SetClinicID(s string) {
	m.clinic_id = &s
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *PolicySnapshotMutation) ClinicID() (r string, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the PolicySnapshot entity.
// If the PolicySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicySnapshotMutation) OldClinicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *PolicySnapshotMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetBundleID sets the "bundle_id" field.
func (m *PolicySnapshotMutation) SetBundleID(s string) {
	m.bundle_id = &s
}

// BundleID returns the value of the "bundle_id" field in the mutation.
func (m *PolicySnapshotMutation) BundleID() (r string, exists bool) {
	v := m.bundle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBundleID returns the old "bundle_id" field's value of the PolicySnapshot entity.
// If the PolicySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicySnapshotMutation) OldBundleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBundleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBundleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBundleID: %w", err)
	}
	return oldValue.BundleID, nil
}

// ResetBundleID resets all changes to the "bundle_id" field.
func (m *PolicySnapshotMutation) ResetBundleID() {
	m.bundle_id = nil
}

// SetVersion sets the "version" field.
func (m *PolicySnapshotMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PolicySnapshotMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the PolicySnapshot entity.
// If the PolicySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicySnapshotMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PolicySnapshotMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PolicySnapshotMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PolicySnapshotMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetStatus sets the "status" field.
func (m *PolicySnapshotMutation) SetStatus(po policysnapshot.Status) {
	m.status = &po
}

// Status returns the value of the "status" field in the mutation.
func (m *PolicySnapshotMutation) Status() (r policysnapshot.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PolicySnapshot entity.
// If the PolicySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicySnapshotMutation) OldStatus(ctx context.Context) (v policysnapshot.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PolicySnapshotMutation) ResetStatus() {
	m.status = nil
}

// SetSha256 sets the "sha256" field.
func (m *PolicySnapshotMutation) SetSha256(s string) {
	m.sha256 = &s
}

// Sha256 returns the value of the "sha256" field in the mutation.
func (m *PolicySnapshotMutation) Sha256() (r string, exists bool) {
	v := m.sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldSha256 returns the old "sha256" field's value of the PolicySnapshot entity.
// If the PolicySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicySnapshotMutation) OldSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSha256: %w", err)
	}
	return oldValue.Sha256, nil
}

// ResetSha256 resets all changes to the "sha256" field.
func (m *PolicySnapshotMutation) ResetSha256() {
	m.sha256 = nil
}

// SetBundle sets the "bundle" field.
func (m *PolicySnapshotMutation) SetBundle(value map[string]interface{}) {
	m.bundle = &value
}

// Bundle returns the value of the "bundle" field in the mutation.
func (m *PolicySnapshotMutation) Bundle() (r map[string]interface{}, exists bool) {
	v := m.bundle
	if v == nil {
		return
	}
	return *v, true
}

// OldBundle returns the old "bundle" field's value of the PolicySnapshot entity.
// If the PolicySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicySnapshotMutation) OldBundle(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBundle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBundle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBundle: %w", err)
	}
	return oldValue.Bundle, nil
}

// ResetBundle resets all changes to the "bundle" field.
func (m *PolicySnapshotMutation) ResetBundle() {
	m.bundle = nil
}

// SetMetadata sets the "metadata" field.
func (m *PolicySnapshotMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *PolicySnapshotMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the PolicySnapshot entity.
// If the PolicySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicySnapshotMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *PolicySnapshotMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[policysnapshot.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *PolicySnapshotMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[policysnapshot.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *PolicySnapshotMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, policysnapshot.FieldMetadata)
}

// SetActor sets the "actor" field.
func (m *PolicySnapshotMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *PolicySnapshotMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the PolicySnapshot entity.
// If the PolicySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicySnapshotMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *PolicySnapshotMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[policysnapshot.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *PolicySnapshotMutation) ActorCleared() bool {
	_, ok := m.clearedFields[policysnapshot.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *PolicySnapshotMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, policysnapshot.FieldActor)
}

// SetCreatedAt sets the "created_at" field.
func (m *PolicySnapshotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PolicySnapshotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PolicySnapshot entity.
// If the PolicySnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PolicySnapshotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PolicySnapshotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PolicySnapshotMutation builder.
func (m *PolicySnapshotMutation) Where(ps ...predicate.PolicySnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PolicySnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PolicySnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PolicySnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PolicySnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PolicySnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PolicySnapshot).
func (m *PolicySnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PolicySnapshotMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.clinic_id != nil {
		fields = append(fields, policysnapshot.FieldClinicID)
	}
	if m.bundle_id != nil {
		fields = append(fields, policysnapshot.FieldBundleID)
	}
	if m.version != nil {
		fields = append(fields, policysnapshot.FieldVersion)
	}
	if m.status != nil {
		fields = append(fields, policysnapshot.FieldStatus)
	}
	if m.sha256 != nil {
		fields = append(fields, policysnapshot.FieldSha256)
	}
	if m.bundle != nil {
		fields = append(fields, policysnapshot.FieldBundle)
	}
	if m.metadata != nil {
		fields = append(fields, policysnapshot.FieldMetadata)
	}
	if m.actor != nil {
		fields = append(fields, policysnapshot.FieldActor)
	}
	if m.created_at != nil {
		fields = append(fields, policysnapshot.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PolicySnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case policysnapshot.FieldClinicID:
		return m.ClinicID()
	case policysnapshot.FieldBundleID:
		return m.BundleID()
	case policysnapshot.FieldVersion:
		return m.Version()
	case policysnapshot.FieldStatus:
		return m.Status()
	case policysnapshot.FieldSha256:
		return m.Sha256()
	case policysnapshot.FieldBundle:
		return m.Bundle()
	case policysnapshot.FieldMetadata:
		return m.Metadata()
	case policysnapshot.FieldActor:
		return m.Actor()
	case policysnapshot.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PolicySnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case policysnapshot.FieldClinicID:
		return m.OldClinicID(ctx)
	case policysnapshot.FieldBundleID:
		return m.OldBundleID(ctx)
	case policysnapshot.FieldVersion:
		return m.OldVersion(ctx)
	case policysnapshot.FieldStatus:
		return m.OldStatus(ctx)
	case policysnapshot.FieldSha256:
		return m.OldSha256(ctx)
	case policysnapshot.FieldBundle:
		return m.OldBundle(ctx)
	case policysnapshot.FieldMetadata:
		return m.OldMetadata(ctx)
	case policysnapshot.FieldActor:
		return m.OldActor(ctx)
	case policysnapshot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PolicySnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicySnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case policysnapshot.FieldClinicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case policysnapshot.FieldBundleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBundleID(v)
		return nil
	case policysnapshot.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case policysnapshot.FieldStatus:
		v, ok := value.(policysnapshot.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case policysnapshot.FieldSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSha256(v)
		return nil
	case policysnapshot.FieldBundle:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBundle(v)
		return nil
	case policysnapshot.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case policysnapshot.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case policysnapshot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PolicySnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PolicySnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, policysnapshot.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PolicySnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case policysnapshot.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PolicySnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case policysnapshot.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown PolicySnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PolicySnapshotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(policysnapshot.FieldMetadata) {
		fields = append(fields, policysnapshot.FieldMetadata)
	}
	if m.FieldCleared(policysnapshot.FieldActor) {
		fields = append(fields, policysnapshot.FieldActor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PolicySnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PolicySnapshotMutation) ClearField(name string) error {
	switch name {
	case policysnapshot.FieldMetadata:
		m.ClearMetadata()
		return nil
	case policysnapshot.FieldActor:
		m.ClearActor()
		return nil
	}
	return fmt.Errorf("unknown PolicySnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PolicySnapshotMutation) ResetField(name string) error {
	switch name {
	case policysnapshot.FieldClinicID:
		m.ResetClinicID()
		return nil
	case policysnapshot.FieldBundleID:
		m.ResetBundleID()
		return nil
	case policysnapshot.FieldVersion:
		m.ResetVersion()
		return nil
	case policysnapshot.FieldStatus:
		m.ResetStatus()
		return nil
	case policysnapshot.FieldSha256:
		m.ResetSha256()
		return nil
	case policysnapshot.FieldBundle:
		m.ResetBundle()
		return nil
	case policysnapshot.FieldMetadata:
		m.ResetMetadata()
		return nil
	case policysnapshot.FieldActor:
		m.ResetActor()
		return nil
	case policysnapshot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PolicySnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PolicySnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PolicySnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PolicySnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PolicySnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PolicySnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PolicySnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PolicySnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PolicySnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PolicySnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PolicySnapshot edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	phone                  *string
	clinic_id              *string
	status                 *session.Status
	language               *string
	started_at             *time.Time
	last_activity_at       *time.Time
	prev_session_id        *string
	reset_kind             *session.ResetKind
	summary                *string
	summary_status         *session.SummaryStatus
	episode                *map[string]interface{}
	pending_action         *string
	last_service_mentioned *string
	closed_at              *time.Time
	clearedFields          map[string]struct{}
	turns                  map[string]struct{}
	removedturns           map[string]struct{}
	clearedturns           bool
	done                   bool
	oldValue               func(context.Context) (*Session, error)
	predicates             []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPhone sets the "phone" field.
func (m *SessionMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *SessionMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *SessionMutation) ResetPhone() {
	m.phone = nil
}

// SetClinicID sets the "clinic_id" field.
func (m *SessionMutation) SetClinicID(s string) {
	m.clinic_id = &s
}

// ClinicID returns the value of the "clinic_id" field in the mutation.
func (m *SessionMutation) ClinicID() (r string, exists bool) {
	v := m.clinic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClinicID returns the old "clinic_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldClinicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClinicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClinicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClinicID: %w", err)
	}
	return oldValue.ClinicID, nil
}

// ResetClinicID resets all changes to the "clinic_id" field.
func (m *SessionMutation) ResetClinicID() {
	m.clinic_id = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetLanguage sets the "language" field.
func (m *SessionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *SessionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *SessionMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[session.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *SessionMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[session.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *SessionMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, session.FieldLanguage)
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *SessionMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *SessionMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLastActivityAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *SessionMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
}

// SetPrevSessionID sets the "prev_session_id" field.
func (m *SessionMutation) SetPrevSessionID(s string) {
	m.prev_session_id = &s
}

// PrevSessionID returns the value of the "prev_session_id" field in the mutation.
func (m *SessionMutation) PrevSessionID() (r string, exists bool) {
	v := m.prev_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevSessionID returns the old "prev_session_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPrevSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevSessionID: %w", err)
	}
	return oldValue.PrevSessionID, nil
}

// ClearPrevSessionID clears the value of the "prev_session_id" field.
func (m *SessionMutation) ClearPrevSessionID() {
	m.prev_session_id = nil
	m.clearedFields[session.FieldPrevSessionID] = struct{}{}
}

// PrevSessionIDCleared returns if the "prev_session_id" field was cleared in this mutation.
func (m *SessionMutation) PrevSessionIDCleared() bool {
	_, ok := m.clearedFields[session.FieldPrevSessionID]
	return ok
}

// ResetPrevSessionID resets all changes to the "prev_session_id" field.
func (m *SessionMutation) ResetPrevSessionID() {
	m.prev_session_id = nil
	delete(m.clearedFields, session.FieldPrevSessionID)
}

// SetResetKind sets the "reset_kind" field.
func (m *SessionMutation) SetResetKind(sk session.ResetKind) {
	m.reset_kind = &sk
}

// ResetKind returns the value of the "reset_kind" field in the mutation.
func (m *SessionMutation) ResetKind() (r session.ResetKind, exists bool) {
	v := m.reset_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldResetKind returns the old "reset_kind" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldResetKind(ctx context.Context) (v session.ResetKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResetKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResetKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResetKind: %w", err)
	}
	return oldValue.ResetKind, nil
}

// ResetResetKind resets all changes to the "reset_kind" field.
func (m *SessionMutation) ResetResetKind() {
	m.reset_kind = nil
}

// SetSummary sets the "summary" field.
func (m *SessionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SessionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *SessionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[session.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *SessionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[session.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *SessionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, session.FieldSummary)
}

// SetSummaryStatus sets the "summary_status" field.
func (m *SessionMutation) SetSummaryStatus(ss session.SummaryStatus) {
	m.summary_status = &ss
}

// SummaryStatus returns the value of the "summary_status" field in the mutation.
func (m *SessionMutation) SummaryStatus() (r session.SummaryStatus, exists bool) {
	v := m.summary_status
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryStatus returns the old "summary_status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSummaryStatus(ctx context.Context) (v session.SummaryStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryStatus: %w", err)
	}
	return oldValue.SummaryStatus, nil
}

// ResetSummaryStatus resets all changes to the "summary_status" field.
func (m *SessionMutation) ResetSummaryStatus() {
	m.summary_status = nil
}

// SetEpisode sets the "episode" field.
func (m *SessionMutation) SetEpisode(value map[string]interface{}) {
	m.episode = &value
}

// Episode returns the value of the "episode" field in the mutation.
func (m *SessionMutation) Episode() (r map[string]interface{}, exists bool) {
	v := m.episode
	if v == nil {
		return
	}
	return *v, true
}

// OldEpisode returns the old "episode" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEpisode(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpisode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpisode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpisode: %w", err)
	}
	return oldValue.Episode, nil
}

// ClearEpisode clears the value of the "episode" field.
func (m *SessionMutation) ClearEpisode() {
	m.episode = nil
	m.clearedFields[session.FieldEpisode] = struct{}{}
}

// EpisodeCleared returns if the "episode" field was cleared in this mutation.
func (m *SessionMutation) EpisodeCleared() bool {
	_, ok := m.clearedFields[session.FieldEpisode]
	return ok
}

// ResetEpisode resets all changes to the "episode" field.
func (m *SessionMutation) ResetEpisode() {
	m.episode = nil
	delete(m.clearedFields, session.FieldEpisode)
}

// SetPendingAction sets the "pending_action" field.
func (m *SessionMutation) SetPendingAction(s string) {
	m.pending_action = &s
}

// PendingAction returns the value of the "pending_action" field in the mutation.
func (m *SessionMutation) PendingAction() (r string, exists bool) {
	v := m.pending_action
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingAction returns the old "pending_action" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPendingAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingAction: %w", err)
	}
	return oldValue.PendingAction, nil
}

// ClearPendingAction clears the value of the "pending_action" field.
func (m *SessionMutation) ClearPendingAction() {
	m.pending_action = nil
	m.clearedFields[session.FieldPendingAction] = struct{}{}
}

// PendingActionCleared returns if the "pending_action" field was cleared in this mutation.
func (m *SessionMutation) PendingActionCleared() bool {
	_, ok := m.clearedFields[session.FieldPendingAction]
	return ok
}

// ResetPendingAction resets all changes to the "pending_action" field.
func (m *SessionMutation) ResetPendingAction() {
	m.pending_action = nil
	delete(m.clearedFields, session.FieldPendingAction)
}

// SetLastServiceMentioned sets the "last_service_mentioned" field.
func (m *SessionMutation) SetLastServiceMentioned(s string) {
	m.last_service_mentioned = &s
}

// LastServiceMentioned returns the value of the "last_service_mentioned" field in the mutation.
func (m *SessionMutation) LastServiceMentioned() (r string, exists bool) {
	v := m.last_service_mentioned
	if v == nil {
		return
	}
	return *v, true
}

// OldLastServiceMentioned returns the old "last_service_mentioned" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLastServiceMentioned(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastServiceMentioned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastServiceMentioned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastServiceMentioned: %w", err)
	}
	return oldValue.LastServiceMentioned, nil
}

// ClearLastServiceMentioned clears the value of the "last_service_mentioned" field.
func (m *SessionMutation) ClearLastServiceMentioned() {
	m.last_service_mentioned = nil
	m.clearedFields[session.FieldLastServiceMentioned] = struct{}{}
}

// LastServiceMentionedCleared returns if the "last_service_mentioned" field was cleared in this mutation.
func (m *SessionMutation) LastServiceMentionedCleared() bool {
	_, ok := m.clearedFields[session.FieldLastServiceMentioned]
	return ok
}

// ResetLastServiceMentioned resets all changes to the "last_service_mentioned" field.
func (m *SessionMutation) ResetLastServiceMentioned() {
	m.last_service_mentioned = nil
	delete(m.clearedFields, session.FieldLastServiceMentioned)
}

// SetClosedAt sets the "closed_at" field.
func (m *SessionMutation) SetClosedAt(t time.Time) {
	m.closed_at = &t
}

// ClosedAt returns the value of the "closed_at" field in the mutation.
func (m *SessionMutation) ClosedAt() (r time.Time, exists bool) {
	v := m.closed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClosedAt returns the old "closed_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldClosedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClosedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClosedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClosedAt: %w", err)
	}
	return oldValue.ClosedAt, nil
}

// ClearClosedAt clears the value of the "closed_at" field.
func (m *SessionMutation) ClearClosedAt() {
	m.closed_at = nil
	m.clearedFields[session.FieldClosedAt] = struct{}{}
}

// ClosedAtCleared returns if the "closed_at" field was cleared in this mutation.
func (m *SessionMutation) ClosedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldClosedAt]
	return ok
}

// ResetClosedAt resets all changes to the "closed_at" field.
func (m *SessionMutation) ResetClosedAt() {
	m.closed_at = nil
	delete(m.clearedFields, session.FieldClosedAt)
}

// AddTurnIDs adds the "turns" edge to the ConversationTurn entity by ids.
func (m *SessionMutation) AddTurnIDs(ids ...string) {
	if m.turns == nil {
		m.turns = make(map[string]struct{})
	}
	for i := range ids {
		m.turns[ids[i]] = struct{}{}
	}
}

// ClearTurns clears the "turns" edge to the ConversationTurn entity.
func (m *SessionMutation) ClearTurns() {
	m.clearedturns = true
}

// TurnsCleared reports if the "turns" edge to the ConversationTurn entity was cleared.
func (m *SessionMutation) TurnsCleared() bool {
	return m.clearedturns
}

// RemoveTurnIDs removes the "turns" edge to the ConversationTurn entity by IDs.
func (m *SessionMutation) RemoveTurnIDs(ids ...string) {
	if m.removedturns == nil {
		m.removedturns = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.turns, ids[i])
		m.removedturns[ids[i]] = struct{}{}
	}
}

// RemovedTurns returns the removed IDs of the "turns" edge to the ConversationTurn entity.
func (m *SessionMutation) RemovedTurnsIDs() (ids []string) {
	for id := range m.removedturns {
		ids = append(ids, id)
	}
	return
}

// TurnsIDs returns the "turns" edge IDs in the mutation.
func (m *SessionMutation) TurnsIDs() (ids []string) {
	for id := range m.turns {
		ids = append(ids, id)
	}
	return
}

// ResetTurns resets all changes to the "turns" edge.
func (m *SessionMutation) ResetTurns() {
	m.turns = nil
	m.clearedturns = false
	m.removedturns = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.phone != nil {
		fields = append(fields, session.FieldPhone)
	}
	if m.clinic_id != nil {
		fields = append(fields, session.FieldClinicID)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.language != nil {
		fields = append(fields, session.FieldLanguage)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.last_activity_at != nil {
		fields = append(fields, session.FieldLastActivityAt)
	}
	if m.prev_session_id != nil {
		fields = append(fields, session.FieldPrevSessionID)
	}
	if m.reset_kind != nil {
		fields = append(fields, session.FieldResetKind)
	}
	if m.summary != nil {
		fields = append(fields, session.FieldSummary)
	}
	if m.summary_status != nil {
		fields = append(fields, session.FieldSummaryStatus)
	}
	if m.episode != nil {
		fields = append(fields, session.FieldEpisode)
	}
	if m.pending_action != nil {
		fields = append(fields, session.FieldPendingAction)
	}
	if m.last_service_mentioned != nil {
		fields = append(fields, session.FieldLastServiceMentioned)
	}
	if m.closed_at != nil {
		fields = append(fields, session.FieldClosedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldPhone:
		return m.Phone()
	case session.FieldClinicID:
		return m.ClinicID()
	case session.FieldStatus:
		return m.Status()
	case session.FieldLanguage:
		return m.Language()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldLastActivityAt:
		return m.LastActivityAt()
	case session.FieldPrevSessionID:
		return m.PrevSessionID()
	case session.FieldResetKind:
		return m.ResetKind()
	case session.FieldSummary:
		return m.Summary()
	case session.FieldSummaryStatus:
		return m.SummaryStatus()
	case session.FieldEpisode:
		return m.Episode()
	case session.FieldPendingAction:
		return m.PendingAction()
	case session.FieldLastServiceMentioned:
		return m.LastServiceMentioned()
	case session.FieldClosedAt:
		return m.ClosedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldPhone:
		return m.OldPhone(ctx)
	case session.FieldClinicID:
		return m.OldClinicID(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldLanguage:
		return m.OldLanguage(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case session.FieldPrevSessionID:
		return m.OldPrevSessionID(ctx)
	case session.FieldResetKind:
		return m.OldResetKind(ctx)
	case session.FieldSummary:
		return m.OldSummary(ctx)
	case session.FieldSummaryStatus:
		return m.OldSummaryStatus(ctx)
	case session.FieldEpisode:
		return m.OldEpisode(ctx)
	case session.FieldPendingAction:
		return m.OldPendingAction(ctx)
	case session.FieldLastServiceMentioned:
		return m.OldLastServiceMentioned(ctx)
	case session.FieldClosedAt:
		return m.OldClosedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case session.FieldClinicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClinicID(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case session.FieldPrevSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevSessionID(v)
		return nil
	case session.FieldResetKind:
		v, ok := value.(session.ResetKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResetKind(v)
		return nil
	case session.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case session.FieldSummaryStatus:
		v, ok := value.(session.SummaryStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryStatus(v)
		return nil
	case session.FieldEpisode:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpisode(v)
		return nil
	case session.FieldPendingAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingAction(v)
		return nil
	case session.FieldLastServiceMentioned:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastServiceMentioned(v)
		return nil
	case session.FieldClosedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClosedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldLanguage) {
		fields = append(fields, session.FieldLanguage)
	}
	if m.FieldCleared(session.FieldPrevSessionID) {
		fields = append(fields, session.FieldPrevSessionID)
	}
	if m.FieldCleared(session.FieldSummary) {
		fields = append(fields, session.FieldSummary)
	}
	if m.FieldCleared(session.FieldEpisode) {
		fields = append(fields, session.FieldEpisode)
	}
	if m.FieldCleared(session.FieldPendingAction) {
		fields = append(fields, session.FieldPendingAction)
	}
	if m.FieldCleared(session.FieldLastServiceMentioned) {
		fields = append(fields, session.FieldLastServiceMentioned)
	}
	if m.FieldCleared(session.FieldClosedAt) {
		fields = append(fields, session.FieldClosedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldLanguage:
		m.ClearLanguage()
		return nil
	case session.FieldPrevSessionID:
		m.ClearPrevSessionID()
		return nil
	case session.FieldSummary:
		m.ClearSummary()
		return nil
	case session.FieldEpisode:
		m.ClearEpisode()
		return nil
	case session.FieldPendingAction:
		m.ClearPendingAction()
		return nil
	case session.FieldLastServiceMentioned:
		m.ClearLastServiceMentioned()
		return nil
	case session.FieldClosedAt:
		m.ClearClosedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldPhone:
		m.ResetPhone()
		return nil
	case session.FieldClinicID:
		m.ResetClinicID()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldLanguage:
		m.ResetLanguage()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case session.FieldPrevSessionID:
		m.ResetPrevSessionID()
		return nil
	case session.FieldResetKind:
		m.ResetResetKind()
		return nil
	case session.FieldSummary:
		m.ResetSummary()
		return nil
	case session.FieldSummaryStatus:
		m.ResetSummaryStatus()
		return nil
	case session.FieldEpisode:
		m.ResetEpisode()
		return nil
	case session.FieldPendingAction:
		m.ResetPendingAction()
		return nil
	case session.FieldLastServiceMentioned:
		m.ResetLastServiceMentioned()
		return nil
	case session.FieldClosedAt:
		m.ResetClosedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.turns != nil {
		edges = append(edges, session.EdgeTurns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeTurns:
		ids := make([]ent.Value, 0, len(m.turns))
		for id := range m.turns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedturns != nil {
		edges = append(edges, session.EdgeTurns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeTurns:
		ids := make([]ent.Value, 0, len(m.removedturns))
		for id := range m.removedturns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedturns {
		edges = append(edges, session.EdgeTurns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeTurns:
		return m.clearedturns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeTurns:
		m.ResetTurns()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}
