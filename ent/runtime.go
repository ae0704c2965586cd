// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/assessly/ent/llmrequestevent"
	"github.com/abhisek/assessly/ent/progress"
	"github.com/abhisek/assessly/ent/schema"
	"github.com/abhisek/assessly/ent/submissionevent"
	"github.com/abhisek/assessly/ent/telemetryevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescAssessmentID is the schema descriptor for assessment_id field.
	llmrequesteventDescAssessmentID := llmrequesteventMixinFields0[2].Descriptor()
	// llmrequestevent.DefaultAssessmentID holds the default value on creation for the assessment_id field.
	llmrequestevent.DefaultAssessmentID = llmrequesteventDescAssessmentID.Default.(string)
	// llmrequesteventDescLearnerID is the schema descriptor for learner_id field.
	llmrequesteventDescLearnerID := llmrequesteventMixinFields0[3].Descriptor()
	// llmrequestevent.DefaultLearnerID holds the default value on creation for the learner_id field.
	llmrequestevent.DefaultLearnerID = llmrequesteventDescLearnerID.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescAssessmentID is the schema descriptor for assessment_id field.
	progressDescAssessmentID := progressFields[0].Descriptor()
	// progress.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	progress.AssessmentIDValidator = progressDescAssessmentID.Validators[0].(func(string) error)
	// progressDescLearnerID is the schema descriptor for learner_id field.
	progressDescLearnerID := progressFields[1].Descriptor()
	// progress.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	progress.LearnerIDValidator = progressDescLearnerID.Validators[0].(func(string) error)
	// progressDescStep is the schema descriptor for step field.
	progressDescStep := progressFields[2].Descriptor()
	// progress.DefaultStep holds the default value on creation for the step field.
	progress.DefaultStep = progressDescStep.Default.(int)
	// progressDescNumAttempts is the schema descriptor for num_attempts field.
	progressDescNumAttempts := progressFields[3].Descriptor()
	// progress.DefaultNumAttempts holds the default value on creation for the num_attempts field.
	progress.DefaultNumAttempts = progressDescNumAttempts.Default.(int)
	// progressDescAttempted is the schema descriptor for attempted field.
	progressDescAttempted := progressFields[4].Descriptor()
	// progress.DefaultAttempted holds the default value on creation for the attempted field.
	progress.DefaultAttempted = progressDescAttempted.Default.(bool)
	// progressDescCompleted is the schema descriptor for completed field.
	progressDescCompleted := progressFields[5].Descriptor()
	// progress.DefaultCompleted holds the default value on creation for the completed field.
	progress.DefaultCompleted = progressDescCompleted.Default.(bool)
	// progressDescUpdatedAt is the schema descriptor for updated_at field.
	progressDescUpdatedAt := progressFields[7].Descriptor()
	// progress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progress.DefaultUpdatedAt = progressDescUpdatedAt.Default.(func() time.Time)
	// progress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progress.UpdateDefaultUpdatedAt = progressDescUpdatedAt.UpdateDefault.(func() time.Time)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescAssessmentID is the schema descriptor for assessment_id field.
	submissioneventDescAssessmentID := submissioneventMixinFields0[2].Descriptor()
	// submissionevent.DefaultAssessmentID holds the default value on creation for the assessment_id field.
	submissionevent.DefaultAssessmentID = submissioneventDescAssessmentID.Default.(string)
	// submissioneventDescLearnerID is the schema descriptor for learner_id field.
	submissioneventDescLearnerID := submissioneventMixinFields0[3].Descriptor()
	// submissionevent.DefaultLearnerID holds the default value on creation for the learner_id field.
	submissionevent.DefaultLearnerID = submissioneventDescLearnerID.Default.(string)
	// submissioneventDescExerciseID is the schema descriptor for exercise_id field.
	submissioneventDescExerciseID := submissioneventFields[0].Descriptor()
	// submissionevent.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	submissionevent.ExerciseIDValidator = submissioneventDescExerciseID.Validators[0].(func(string) error)
	// submissioneventDescStatus is the schema descriptor for status field.
	submissioneventDescStatus := submissioneventFields[2].Descriptor()
	// submissionevent.DefaultStatus holds the default value on creation for the status field.
	submissionevent.DefaultStatus = submissioneventDescStatus.Default.(string)
	// submissioneventDescNumAttempts is the schema descriptor for num_attempts field.
	submissioneventDescNumAttempts := submissioneventFields[4].Descriptor()
	// submissionevent.DefaultNumAttempts holds the default value on creation for the num_attempts field.
	submissionevent.DefaultNumAttempts = submissioneventDescNumAttempts.Default.(int)
	telemetryeventMixin := schema.TelemetryEvent{}.Mixin()
	telemetryeventMixinFields0 := telemetryeventMixin[0].Fields()
	_ = telemetryeventMixinFields0
	telemetryeventFields := schema.TelemetryEvent{}.Fields()
	_ = telemetryeventFields
	// telemetryeventDescTimestamp is the schema descriptor for timestamp field.
	telemetryeventDescTimestamp := telemetryeventMixinFields0[1].Descriptor()
	// telemetryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	telemetryevent.DefaultTimestamp = telemetryeventDescTimestamp.Default.(func() time.Time)
	// telemetryeventDescAssessmentID is the schema descriptor for assessment_id field.
	telemetryeventDescAssessmentID := telemetryeventMixinFields0[2].Descriptor()
	// telemetryevent.DefaultAssessmentID holds the default value on creation for the assessment_id field.
	telemetryevent.DefaultAssessmentID = telemetryeventDescAssessmentID.Default.(string)
	// telemetryeventDescLearnerID is the schema descriptor for learner_id field.
	telemetryeventDescLearnerID := telemetryeventMixinFields0[3].Descriptor()
	// telemetryevent.DefaultLearnerID holds the default value on creation for the learner_id field.
	telemetryevent.DefaultLearnerID = telemetryeventDescLearnerID.Default.(string)
	// telemetryeventDescEventType is the schema descriptor for event_type field.
	telemetryeventDescEventType := telemetryeventFields[0].Descriptor()
	// telemetryevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	telemetryevent.EventTypeValidator = telemetryeventDescEventType.Validators[0].(func(string) error)
	// telemetryeventDescExerciseID is the schema descriptor for exercise_id field.
	telemetryeventDescExerciseID := telemetryeventFields[1].Descriptor()
	// telemetryevent.DefaultExerciseID holds the default value on creation for the exercise_id field.
	telemetryevent.DefaultExerciseID = telemetryeventDescExerciseID.Default.(string)
	// telemetryeventDescSessionID is the schema descriptor for session_id field.
	telemetryeventDescSessionID := telemetryeventFields[2].Descriptor()
	// telemetryevent.DefaultSessionID holds the default value on creation for the session_id field.
	telemetryevent.DefaultSessionID = telemetryeventDescSessionID.Default.(string)
}
