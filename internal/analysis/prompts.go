package analysis

const moodSystemPrompt = `You are an emotion classification API. Reply with a single JSON object and nothing else.`

const moodPromptTemplate = `Classify the dominant emotion of the text below.

Text: %q

Allowed emotions (use exactly one, lower case):
happy, sad, angry, fear, surprise, disgust, neutral

Weigh context, tone and intensity. Give a confidence between 0.0 and 1.0.

Examples:
"I'm thrilled about my promotion!" -> {"emotion": "happy", "confidence": 0.9}
"This weather is okay I guess" -> {"emotion": "neutral", "confidence": 0.7}
"I'm devastated by this news" -> {"emotion": "sad", "confidence": 0.95}

Reply format:
{"emotion": "<emotion>", "confidence": <number>}`

const crisisSystemPrompt = `You are a mental health crisis screening API. Reply with a single JSON object and nothing else. When the text is ambiguous, choose the more cautious severity.`

const crisisPromptTemplate = `Screen the text below for signs of a mental health crisis: suicidal thoughts or plans, self-harm, hopelessness, feeling trapped or like a burden, wanting to die or disappear, severe despair, or substance use with intent to harm.

Text: %q

Severity tiers:
none: no crisis indicators
low: mild distress or general sadness
moderate: concerning language that needs attention
high: clear crisis indicators that need immediate attention

crisis_detected must be false only when severity is "none".

Examples:
"See you at lunch" -> {"crisis_detected": false, "severity": "none", "confidence": 0.95}
"I'm having a bad day" -> {"crisis_detected": true, "severity": "low", "confidence": 0.6}
"I don't want to be here anymore" -> {"crisis_detected": true, "severity": "high", "confidence": 0.95}

Reply format:
{"crisis_detected": <bool>, "severity": "<tier>", "confidence": <number>}`

const summarySystemPrompt = `You are a text summarization API. Reply with a single JSON object and nothing else.`

const summaryPromptTemplate = `Summarize the text below.

Text: %q

Keep the key points and important details, keep the original tone, and aim for 20-30%% of the original length in clear language.

Reply format:
{"summary": "<summary>"}`
