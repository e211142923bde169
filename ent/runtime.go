// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mediqo/mediqo/ent/appointment"
	"github.com/mediqo/mediqo/ent/clinic"
	"github.com/mediqo/mediqo/ent/conversationturn"
	"github.com/mediqo/mediqo/ent/escalation"
	"github.com/mediqo/mediqo/ent/hold"
	"github.com/mediqo/mediqo/ent/patient"
	"github.com/mediqo/mediqo/ent/policysnapshot"
	"github.com/mediqo/mediqo/ent/schema"
	"github.com/mediqo/mediqo/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentFields[13].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentFields[14].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	clinicFields := schema.Clinic{}.Fields()
	_ = clinicFields
	// clinicDescTimezone is the schema descriptor for timezone field.
	clinicDescTimezone := clinicFields[2].Descriptor()
	// clinic.DefaultTimezone holds the default value on creation for the timezone field.
	clinic.DefaultTimezone = clinicDescTimezone.Default.(string)
	// clinicDescDefaultLanguage is the schema descriptor for default_language field.
	clinicDescDefaultLanguage := clinicFields[4].Descriptor()
	// clinic.DefaultDefaultLanguage holds the default value on creation for the default_language field.
	clinic.DefaultDefaultLanguage = clinicDescDefaultLanguage.Default.(string)
	// clinicDescCreatedAt is the schema descriptor for created_at field.
	clinicDescCreatedAt := clinicFields[6].Descriptor()
	// clinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinic.DefaultCreatedAt = clinicDescCreatedAt.Default.(func() time.Time)
	// clinicDescUpdatedAt is the schema descriptor for updated_at field.
	clinicDescUpdatedAt := clinicFields[7].Descriptor()
	// clinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinic.DefaultUpdatedAt = clinicDescUpdatedAt.Default.(func() time.Time)
	// clinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinic.UpdateDefaultUpdatedAt = clinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationturnFields := schema.ConversationTurn{}.Fields()
	_ = conversationturnFields
	// conversationturnDescFastPath is the schema descriptor for fast_path field.
	conversationturnDescFastPath := conversationturnFields[7].Descriptor()
	// conversationturn.DefaultFastPath holds the default value on creation for the fast_path field.
	conversationturn.DefaultFastPath = conversationturnDescFastPath.Default.(bool)
	// conversationturnDescHallucinationBlocked is the schema descriptor for hallucination_blocked field.
	conversationturnDescHallucinationBlocked := conversationturnFields[10].Descriptor()
	// conversationturn.DefaultHallucinationBlocked holds the default value on creation for the hallucination_blocked field.
	conversationturn.DefaultHallucinationBlocked = conversationturnDescHallucinationBlocked.Default.(bool)
	// conversationturnDescResponseFlagged is the schema descriptor for response_flagged field.
	conversationturnDescResponseFlagged := conversationturnFields[11].Descriptor()
	// conversationturn.DefaultResponseFlagged holds the default value on creation for the response_flagged field.
	conversationturn.DefaultResponseFlagged = conversationturnDescResponseFlagged.Default.(bool)
	// conversationturnDescCreatedAt is the schema descriptor for created_at field.
	conversationturnDescCreatedAt := conversationturnFields[13].Descriptor()
	// conversationturn.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversationturn.DefaultCreatedAt = conversationturnDescCreatedAt.Default.(func() time.Time)
	escalationFields := schema.Escalation{}.Fields()
	_ = escalationFields
	// escalationDescCreatedAt is the schema descriptor for created_at field.
	escalationDescCreatedAt := escalationFields[11].Descriptor()
	// escalation.DefaultCreatedAt holds the default value on creation for the created_at field.
	escalation.DefaultCreatedAt = escalationDescCreatedAt.Default.(func() time.Time)
	// escalationDescUpdatedAt is the schema descriptor for updated_at field.
	escalationDescUpdatedAt := escalationFields[12].Descriptor()
	// escalation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	escalation.DefaultUpdatedAt = escalationDescUpdatedAt.Default.(func() time.Time)
	// escalation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	escalation.UpdateDefaultUpdatedAt = escalationDescUpdatedAt.UpdateDefault.(func() time.Time)
	holdFields := schema.Hold{}.Fields()
	_ = holdFields
	// holdDescCreatedAt is the schema descriptor for created_at field.
	holdDescCreatedAt := holdFields[11].Descriptor()
	// hold.DefaultCreatedAt holds the default value on creation for the created_at field.
	hold.DefaultCreatedAt = holdDescCreatedAt.Default.(func() time.Time)
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientFields[10].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientFields[11].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	policysnapshotFields := schema.PolicySnapshot{}.Fields()
	_ = policysnapshotFields
	// policysnapshotDescCreatedAt is the schema descriptor for created_at field.
	policysnapshotDescCreatedAt := policysnapshotFields[9].Descriptor()
	// policysnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	policysnapshot.DefaultCreatedAt = policysnapshotDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[5].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	// sessionDescLastActivityAt is the schema descriptor for last_activity_at field.
	sessionDescLastActivityAt := sessionFields[6].Descriptor()
	// session.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	session.DefaultLastActivityAt = sessionDescLastActivityAt.Default.(func() time.Time)
}
