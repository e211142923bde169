// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mediqo/mediqo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPhone, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldClinicID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLanguage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastActivityAt, v))
}

// PrevSessionID applies equality check predicate on the "prev_session_id" field. It's identical to PrevSessionIDEQ.
func PrevSessionID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPrevSessionID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSummary, v))
}

// PendingAction applies equality check predicate on the "pending_action" field. It's identical to PendingActionEQ.
func PendingAction(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPendingAction, v))
}

// LastServiceMentioned applies equality check predicate on the "last_service_mentioned" field. It's identical to LastServiceMentionedEQ.
func LastServiceMentioned(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastServiceMentioned, v))
}

// ClosedAt applies equality check predicate on the "closed_at" field. It's identical to ClosedAtEQ.
func ClosedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldClosedAt, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPhone, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldClinicID, v))
}

// ClinicIDContains applies the Contains predicate on the "clinic_id" field.
func ClinicIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldClinicID, v))
}

// ClinicIDHasPrefix applies the HasPrefix predicate on the "clinic_id" field.
func ClinicIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldClinicID, v))
}

// ClinicIDHasSuffix applies the HasSuffix predicate on the "clinic_id" field.
func ClinicIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldClinicID, v))
}

// ClinicIDEqualFold applies the EqualFold predicate on the "clinic_id" field.
func ClinicIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldClinicID, v))
}

// ClinicIDContainsFold applies the ContainsFold predicate on the "clinic_id" field.
func ClinicIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldClinicID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldLanguage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAt, v))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLastActivityAt, v))
}

// PrevSessionIDEQ applies the EQ predicate on the "prev_session_id" field.
func PrevSessionIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPrevSessionID, v))
}

// PrevSessionIDNEQ applies the NEQ predicate on the "prev_session_id" field.
func PrevSessionIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPrevSessionID, v))
}

// PrevSessionIDIn applies the In predicate on the "prev_session_id" field.
func PrevSessionIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPrevSessionID, vs...))
}

// PrevSessionIDNotIn applies the NotIn predicate on the "prev_session_id" field.
func PrevSessionIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPrevSessionID, vs...))
}

// PrevSessionIDGT applies the GT predicate on the "prev_session_id" field.
func PrevSessionIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPrevSessionID, v))
}

// PrevSessionIDGTE applies the GTE predicate on the "prev_session_id" field.
func PrevSessionIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPrevSessionID, v))
}

// PrevSessionIDLT applies the LT predicate on the "prev_session_id" field.
func PrevSessionIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPrevSessionID, v))
}

// PrevSessionIDLTE applies the LTE predicate on the "prev_session_id" field.
func PrevSessionIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPrevSessionID, v))
}

// PrevSessionIDContains applies the Contains predicate on the "prev_session_id" field.
func PrevSessionIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPrevSessionID, v))
}

// PrevSessionIDHasPrefix applies the HasPrefix predicate on the "prev_session_id" field.
func PrevSessionIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPrevSessionID, v))
}

// PrevSessionIDHasSuffix applies the HasSuffix predicate on the "prev_session_id" field.
func PrevSessionIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPrevSessionID, v))
}

// PrevSessionIDIsNil applies the IsNil predicate on the "prev_session_id" field.
func PrevSessionIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPrevSessionID))
}

// PrevSessionIDNotNil applies the NotNil predicate on the "prev_session_id" field.
func PrevSessionIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPrevSessionID))
}

// PrevSessionIDEqualFold applies the EqualFold predicate on the "prev_session_id" field.
func PrevSessionIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPrevSessionID, v))
}

// PrevSessionIDContainsFold applies the ContainsFold predicate on the "prev_session_id" field.
func PrevSessionIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPrevSessionID, v))
}

// ResetKindEQ applies the EQ predicate on the "reset_kind" field.
func ResetKindEQ(v ResetKind) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldResetKind, v))
}

// ResetKindNEQ applies the NEQ predicate on the "reset_kind" field.
func ResetKindNEQ(v ResetKind) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldResetKind, v))
}

// ResetKindIn applies the In predicate on the "reset_kind" field.
func ResetKindIn(vs ...ResetKind) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldResetKind, vs...))
}

// ResetKindNotIn applies the NotIn predicate on the "reset_kind" field.
func ResetKindNotIn(vs ...ResetKind) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldResetKind, vs...))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSummary, v))
}

// SummaryStatusEQ applies the EQ predicate on the "summary_status" field.
func SummaryStatusEQ(v SummaryStatus) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSummaryStatus, v))
}

// SummaryStatusNEQ applies the NEQ predicate on the "summary_status" field.
func SummaryStatusNEQ(v SummaryStatus) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSummaryStatus, v))
}

// SummaryStatusIn applies the In predicate on the "summary_status" field.
func SummaryStatusIn(vs ...SummaryStatus) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSummaryStatus, vs...))
}

// SummaryStatusNotIn applies the NotIn predicate on the "summary_status" field.
func SummaryStatusNotIn(vs ...SummaryStatus) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSummaryStatus, vs...))
}

// EpisodeIsNil applies the IsNil predicate on the "episode" field.
func EpisodeIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEpisode))
}

// EpisodeNotNil applies the NotNil predicate on the "episode" field.
func EpisodeNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEpisode))
}

// PendingActionEQ applies the EQ predicate on the "pending_action" field.
func PendingActionEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPendingAction, v))
}

// PendingActionNEQ applies the NEQ predicate on the "pending_action" field.
func PendingActionNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPendingAction, v))
}

// PendingActionIn applies the In predicate on the "pending_action" field.
func PendingActionIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPendingAction, vs...))
}

// PendingActionNotIn applies the NotIn predicate on the "pending_action" field.
func PendingActionNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPendingAction, vs...))
}

// PendingActionGT applies the GT predicate on the "pending_action" field.
func PendingActionGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPendingAction, v))
}

// PendingActionGTE applies the GTE predicate on the "pending_action" field.
func PendingActionGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPendingAction, v))
}

// PendingActionLT applies the LT predicate on the "pending_action" field.
func PendingActionLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPendingAction, v))
}

// PendingActionLTE applies the LTE predicate on the "pending_action" field.
func PendingActionLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPendingAction, v))
}

// PendingActionContains applies the Contains predicate on the "pending_action" field.
func PendingActionContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPendingAction, v))
}

// PendingActionHasPrefix applies the HasPrefix predicate on the "pending_action" field.
func PendingActionHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPendingAction, v))
}

// PendingActionHasSuffix applies the HasSuffix predicate on the "pending_action" field.
func PendingActionHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPendingAction, v))
}

// PendingActionIsNil applies the IsNil predicate on the "pending_action" field.
func PendingActionIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPendingAction))
}

// PendingActionNotNil applies the NotNil predicate on the "pending_action" field.
func PendingActionNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPendingAction))
}

// PendingActionEqualFold applies the EqualFold predicate on the "pending_action" field.
func PendingActionEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPendingAction, v))
}

// PendingActionContainsFold applies the ContainsFold predicate on the "pending_action" field.
func PendingActionContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPendingAction, v))
}

// LastServiceMentionedEQ applies the EQ predicate on the "last_service_mentioned" field.
func LastServiceMentionedEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastServiceMentioned, v))
}

// LastServiceMentionedNEQ applies the NEQ predicate on the "last_service_mentioned" field.
func LastServiceMentionedNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLastServiceMentioned, v))
}

// LastServiceMentionedIn applies the In predicate on the "last_service_mentioned" field.
func LastServiceMentionedIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLastServiceMentioned, vs...))
}

// LastServiceMentionedNotIn applies the NotIn predicate on the "last_service_mentioned" field.
func LastServiceMentionedNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLastServiceMentioned, vs...))
}

// LastServiceMentionedGT applies the GT predicate on the "last_service_mentioned" field.
func LastServiceMentionedGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLastServiceMentioned, v))
}

// LastServiceMentionedGTE applies the GTE predicate on the "last_service_mentioned" field.
func LastServiceMentionedGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLastServiceMentioned, v))
}

// LastServiceMentionedLT applies the LT predicate on the "last_service_mentioned" field.
func LastServiceMentionedLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLastServiceMentioned, v))
}

// LastServiceMentionedLTE applies the LTE predicate on the "last_service_mentioned" field.
func LastServiceMentionedLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLastServiceMentioned, v))
}

// LastServiceMentionedContains applies the Contains predicate on the "last_service_mentioned" field.
func LastServiceMentionedContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldLastServiceMentioned, v))
}

// LastServiceMentionedHasPrefix applies the HasPrefix predicate on the "last_service_mentioned" field.
func LastServiceMentionedHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldLastServiceMentioned, v))
}

// LastServiceMentionedHasSuffix applies the HasSuffix predicate on the "last_service_mentioned" field.
func LastServiceMentionedHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldLastServiceMentioned, v))
}

// LastServiceMentionedIsNil applies the IsNil predicate on the "last_service_mentioned" field.
func LastServiceMentionedIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldLastServiceMentioned))
}

// LastServiceMentionedNotNil applies the NotNil predicate on the "last_service_mentioned" field.
func LastServiceMentionedNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldLastServiceMentioned))
}

// LastServiceMentionedEqualFold applies the EqualFold predicate on the "last_service_mentioned" field.
func LastServiceMentionedEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldLastServiceMentioned, v))
}

// LastServiceMentionedContainsFold applies the ContainsFold predicate on the "last_service_mentioned" field.
func LastServiceMentionedContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldLastServiceMentioned, v))
}

// ClosedAtEQ applies the EQ predicate on the "closed_at" field.
func ClosedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldClosedAt, v))
}

// ClosedAtNEQ applies the NEQ predicate on the "closed_at" field.
func ClosedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldClosedAt, v))
}

// ClosedAtIn applies the In predicate on the "closed_at" field.
func ClosedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldClosedAt, vs...))
}

// ClosedAtNotIn applies the NotIn predicate on the "closed_at" field.
func ClosedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldClosedAt, vs...))
}

// ClosedAtGT applies the GT predicate on the "closed_at" field.
func ClosedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldClosedAt, v))
}

// ClosedAtGTE applies the GTE predicate on the "closed_at" field.
func ClosedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldClosedAt, v))
}

// ClosedAtLT applies the LT predicate on the "closed_at" field.
func ClosedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldClosedAt, v))
}

// ClosedAtLTE applies the LTE predicate on the "closed_at" field.
func ClosedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldClosedAt, v))
}

// ClosedAtIsNil applies the IsNil predicate on the "closed_at" field.
func ClosedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldClosedAt))
}

// ClosedAtNotNil applies the NotNil predicate on the "closed_at" field.
func ClosedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldClosedAt))
}

// HasTurns applies the HasEdge predicate on the "turns" edge.
func HasTurns() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TurnsTable, TurnsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTurnsWith applies the HasEdge predicate on the "turns" edge with a given conditions (other predicates).
func HasTurnsWith(preds ...predicate.ConversationTurn) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newTurnsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
