// Code generated by ent, DO NOT EDIT.

package conversationturn

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mediqo/mediqo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldSessionID, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldClinicID, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldSequenceNumber, v))
}

// UserMessage applies equality check predicate on the "user_message" field. It's identical to UserMessageEQ.
func UserMessage(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldUserMessage, v))
}

// AssistantMessage applies equality check predicate on the "assistant_message" field. It's identical to AssistantMessageEQ.
func AssistantMessage(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldAssistantMessage, v))
}

// Lane applies equality check predicate on the "lane" field. It's identical to LaneEQ.
func Lane(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldLane, v))
}

// FastPath applies equality check predicate on the "fast_path" field. It's identical to FastPathEQ.
func FastPath(v bool) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldFastPath, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldLatencyMs, v))
}

// HallucinationBlocked applies equality check predicate on the "hallucination_blocked" field. It's identical to HallucinationBlockedEQ.
func HallucinationBlocked(v bool) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldHallucinationBlocked, v))
}

// ResponseFlagged applies equality check predicate on the "response_flagged" field. It's identical to ResponseFlaggedEQ.
func ResponseFlagged(v bool) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldResponseFlagged, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldContainsFold(FieldSessionID, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLTE(FieldClinicID, v))
}

// ClinicIDContains applies the Contains predicate on the "clinic_id" field.
func ClinicIDContains(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldContains(FieldClinicID, v))
}

// ClinicIDHasPrefix applies the HasPrefix predicate on the "clinic_id" field.
func ClinicIDHasPrefix(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldHasPrefix(FieldClinicID, v))
}

// ClinicIDHasSuffix applies the HasSuffix predicate on the "clinic_id" field.
func ClinicIDHasSuffix(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldHasSuffix(FieldClinicID, v))
}

// ClinicIDEqualFold applies the EqualFold predicate on the "clinic_id" field.
func ClinicIDEqualFold(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEqualFold(FieldClinicID, v))
}

// ClinicIDContainsFold applies the ContainsFold predicate on the "clinic_id" field.
func ClinicIDContainsFold(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldContainsFold(FieldClinicID, v))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLTE(FieldSequenceNumber, v))
}

// UserMessageEQ applies the EQ predicate on the "user_message" field.
func UserMessageEQ(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldUserMessage, v))
}

// UserMessageNEQ applies the NEQ predicate on the "user_message" field.
func UserMessageNEQ(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldUserMessage, v))
}

// UserMessageIn applies the In predicate on the "user_message" field.
func UserMessageIn(vs ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIn(FieldUserMessage, vs...))
}

// UserMessageNotIn applies the NotIn predicate on the "user_message" field.
func UserMessageNotIn(vs ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotIn(FieldUserMessage, vs...))
}

// UserMessageGT applies the GT predicate on the "user_message" field.
func UserMessageGT(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGT(FieldUserMessage, v))
}

// UserMessageGTE applies the GTE predicate on the "user_message" field.
func UserMessageGTE(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGTE(FieldUserMessage, v))
}

// UserMessageLT applies the LT predicate on the "user_message" field.
func UserMessageLT(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLT(FieldUserMessage, v))
}

// UserMessageLTE applies the LTE predicate on the "user_message" field.
func UserMessageLTE(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLTE(FieldUserMessage, v))
}

// UserMessageContains applies the Contains predicate on the "user_message" field.
func UserMessageContains(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldContains(FieldUserMessage, v))
}

// UserMessageHasPrefix applies the HasPrefix predicate on the "user_message" field.
func UserMessageHasPrefix(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldHasPrefix(FieldUserMessage, v))
}

// UserMessageHasSuffix applies the HasSuffix predicate on the "user_message" field.
func UserMessageHasSuffix(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldHasSuffix(FieldUserMessage, v))
}

// UserMessageEqualFold applies the EqualFold predicate on the "user_message" field.
func UserMessageEqualFold(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEqualFold(FieldUserMessage, v))
}

// UserMessageContainsFold applies the ContainsFold predicate on the "user_message" field.
func UserMessageContainsFold(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldContainsFold(FieldUserMessage, v))
}

// AssistantMessageEQ applies the EQ predicate on the "assistant_message" field.
func AssistantMessageEQ(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldAssistantMessage, v))
}

// AssistantMessageNEQ applies the NEQ predicate on the "assistant_message" field.
func AssistantMessageNEQ(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldAssistantMessage, v))
}

// AssistantMessageIn applies the In predicate on the "assistant_message" field.
func AssistantMessageIn(vs ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIn(FieldAssistantMessage, vs...))
}

// AssistantMessageNotIn applies the NotIn predicate on the "assistant_message" field.
func AssistantMessageNotIn(vs ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotIn(FieldAssistantMessage, vs...))
}

// AssistantMessageGT applies the GT predicate on the "assistant_message" field.
func AssistantMessageGT(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGT(FieldAssistantMessage, v))
}

// AssistantMessageGTE applies the GTE predicate on the "assistant_message" field.
func AssistantMessageGTE(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGTE(FieldAssistantMessage, v))
}

// AssistantMessageLT applies the LT predicate on the "assistant_message" field.
func AssistantMessageLT(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLT(FieldAssistantMessage, v))
}

// AssistantMessageLTE applies the LTE predicate on the "assistant_message" field.
func AssistantMessageLTE(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLTE(FieldAssistantMessage, v))
}

// AssistantMessageContains applies the Contains predicate on the "assistant_message" field.
func AssistantMessageContains(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldContains(FieldAssistantMessage, v))
}

// AssistantMessageHasPrefix applies the HasPrefix predicate on the "assistant_message" field.
func AssistantMessageHasPrefix(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldHasPrefix(FieldAssistantMessage, v))
}

// AssistantMessageHasSuffix applies the HasSuffix predicate on the "assistant_message" field.
func AssistantMessageHasSuffix(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldHasSuffix(FieldAssistantMessage, v))
}

// AssistantMessageIsNil applies the IsNil predicate on the "assistant_message" field.
func AssistantMessageIsNil() predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIsNull(FieldAssistantMessage))
}

// AssistantMessageNotNil applies the NotNil predicate on the "assistant_message" field.
func AssistantMessageNotNil() predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotNull(FieldAssistantMessage))
}

// AssistantMessageEqualFold applies the EqualFold predicate on the "assistant_message" field.
func AssistantMessageEqualFold(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEqualFold(FieldAssistantMessage, v))
}

// AssistantMessageContainsFold applies the ContainsFold predicate on the "assistant_message" field.
func AssistantMessageContainsFold(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldContainsFold(FieldAssistantMessage, v))
}

// LaneEQ applies the EQ predicate on the "lane" field.
func LaneEQ(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldLane, v))
}

// LaneNEQ applies the NEQ predicate on the "lane" field.
func LaneNEQ(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldLane, v))
}

// LaneIn applies the In predicate on the "lane" field.
func LaneIn(vs ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIn(FieldLane, vs...))
}

// LaneNotIn applies the NotIn predicate on the "lane" field.
func LaneNotIn(vs ...string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotIn(FieldLane, vs...))
}

// LaneGT applies the GT predicate on the "lane" field.
func LaneGT(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGT(FieldLane, v))
}

// LaneGTE applies the GTE predicate on the "lane" field.
func LaneGTE(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGTE(FieldLane, v))
}

// LaneLT applies the LT predicate on the "lane" field.
func LaneLT(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLT(FieldLane, v))
}

// LaneLTE applies the LTE predicate on the "lane" field.
func LaneLTE(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLTE(FieldLane, v))
}

// LaneContains applies the Contains predicate on the "lane" field.
func LaneContains(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldContains(FieldLane, v))
}

// LaneHasPrefix applies the HasPrefix predicate on the "lane" field.
func LaneHasPrefix(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldHasPrefix(FieldLane, v))
}

// LaneHasSuffix applies the HasSuffix predicate on the "lane" field.
func LaneHasSuffix(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldHasSuffix(FieldLane, v))
}

// LaneIsNil applies the IsNil predicate on the "lane" field.
func LaneIsNil() predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIsNull(FieldLane))
}

// LaneNotNil applies the NotNil predicate on the "lane" field.
func LaneNotNil() predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotNull(FieldLane))
}

// LaneEqualFold applies the EqualFold predicate on the "lane" field.
func LaneEqualFold(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEqualFold(FieldLane, v))
}

// LaneContainsFold applies the ContainsFold predicate on the "lane" field.
func LaneContainsFold(v string) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldContainsFold(FieldLane, v))
}

// FastPathEQ applies the EQ predicate on the "fast_path" field.
func FastPathEQ(v bool) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldFastPath, v))
}

// FastPathNEQ applies the NEQ predicate on the "fast_path" field.
func FastPathNEQ(v bool) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldFastPath, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLTE(FieldLatencyMs, v))
}

// LatencyMsIsNil applies the IsNil predicate on the "latency_ms" field.
func LatencyMsIsNil() predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIsNull(FieldLatencyMs))
}

// LatencyMsNotNil applies the NotNil predicate on the "latency_ms" field.
func LatencyMsNotNil() predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotNull(FieldLatencyMs))
}

// ToolsCalledIsNil applies the IsNil predicate on the "tools_called" field.
func ToolsCalledIsNil() predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIsNull(FieldToolsCalled))
}

// ToolsCalledNotNil applies the NotNil predicate on the "tools_called" field.
func ToolsCalledNotNil() predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotNull(FieldToolsCalled))
}

// HallucinationBlockedEQ applies the EQ predicate on the "hallucination_blocked" field.
func HallucinationBlockedEQ(v bool) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldHallucinationBlocked, v))
}

// HallucinationBlockedNEQ applies the NEQ predicate on the "hallucination_blocked" field.
func HallucinationBlockedNEQ(v bool) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldHallucinationBlocked, v))
}

// ResponseFlaggedEQ applies the EQ predicate on the "response_flagged" field.
func ResponseFlaggedEQ(v bool) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldResponseFlagged, v))
}

// ResponseFlaggedNEQ applies the NEQ predicate on the "response_flagged" field.
func ResponseFlaggedNEQ(v bool) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldResponseFlagged, v))
}

// ConstraintsDeltaIsNil applies the IsNil predicate on the "constraints_delta" field.
func ConstraintsDeltaIsNil() predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIsNull(FieldConstraintsDelta))
}

// ConstraintsDeltaNotNil applies the NotNil predicate on the "constraints_delta" field.
func ConstraintsDeltaNotNil() predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotNull(FieldConstraintsDelta))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ConversationTurn {
	return predicate.ConversationTurn(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.ConversationTurn {
	return predicate.ConversationTurn(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversationTurn) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversationTurn) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversationTurn) predicate.ConversationTurn {
	return predicate.ConversationTurn(sql.NotPredicates(p))
}
