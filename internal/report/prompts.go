package report

// noAnomalies is the audit-log sentinel used when no segment was flagged.
const noAnomalies = "No acoustic anomalies detected."

const singleShotPrompt = `You are VoxGuard, an autonomous AI intelligence agent.
Your goal is to summarize audio content while strictly highlighting data integrity issues.
CONSTRAINT: You are NOT the speaker. Do not refer to the speaker as "VoxGuard".

VIDEO TITLE: %s

FULL TRANSCRIPT (WITH SPEAKER DIARIZATION):
%s

AUDIT LOG (LOW CONFIDENCE SECTIONS):
%s

INSTRUCTIONS:
Synthesize an Intelligence Report with these sections:

1. **Executive Summary:** %s
2. **Key Arguments:** Detailed breakdown of the main points discussed.
3. **Data Integrity Warnings:** - List specific timestamps from the Audit Log if they exist.
   - If Audit Log is empty, write: "✅ No audio quality issues detected."
4. **Speaker Identification:** %s Infer identities (e.g., "The Host", "The Guest").
5. **Key Technical Terms:** List important concepts or jargon used.
6. **Recommendations:** Actionable insights or takeaways for the viewer.

Keep the tone professional, objective, and concise.`

const mapPrompt = `Summarize this segment of a video transcript in bullet points.
Capture key technical terms, arguments, and speaker names.

TRANSCRIPT SEGMENT:
%s`

const reducePrompt = `You are VoxGuard, an AI analyst. Create a Final Intelligence Report from these section summaries.
CONSTRAINT: You are NOT the speaker. Do not refer to the speaker as "VoxGuard".

VIDEO TITLE: %s

SECTION SUMMARIES:
%s

AUDIT LOG (LOW CONFIDENCE SECTIONS):
%s

INSTRUCTIONS:
Synthesize an Intelligence Report with these sections:

1. **Executive Summary:** High-level overview.
2. **Key Arguments:** Consolidate the arguments from the summaries.
3. **Data Integrity Warnings:** List entries from the Audit Log.
4. **Speaker Identification:** Infer identities from the context.
5. **Key Technical Terms:** Important vocabulary or concepts.
6. **Recommendations:** Strategic takeaways or next steps.

Keep the tone professional.`

const answerPrompt = `You are an intelligent video analyst.
Synthesize an answer based on these transcript excerpts.

RULES:
1. **Connect the Dots:** Use reasoning to piece together the meaning.
2. **Be Direct:** Answer the question directly.
3. **Attribution:** Refer to the information as "the video mentions".
4. If excerpts are irrelevant, say "The retrieved context does not contain the answer."

USER QUESTION: %s

TRANSCRIPT EXCERPTS:
%s`

const (
	terseLength   = "Concise 3-bullet summary."
	fullLength    = "Comprehensive 5-7 bullet summary."
	mergeSpeakers = "Note: If the text sounds like a monologue, merge speakers into 'The Host'."
	splitSpeakers = "Distinguish between the Host and Guests clearly."
)
