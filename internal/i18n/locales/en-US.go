package locales

// Messages English (US) translations
var MessagesEnUS = map[string]string{
	// Short hints shown after the technical error detail
	"hint.model_not_found":  "Unsupported model '{{.Model}}'. Run 'verto --list-models' to see every supported model.",
	"hint.config":           "Configuration error. Check the environment variables and command-line flags.",
	"hint.auth":             "Authentication failed. Check the API key configuration.",
	"hint.api_client":       "Request error (HTTP {{.Status}}). Check the request parameters and API permissions.",
	"hint.api_server":       "Server error (HTTP {{.Status}}). The service is temporarily unavailable, try again later.",
	"hint.api":              "API call failed. Check the network connection, API key, and model name.",
	"hint.rate_limited":     "Rate limited. Wait a moment and try again.",
	"hint.network_timeout":  "The request timed out. Try again later.",
	"hint.network_connect":  "Could not connect to the server. Check your network connection.",
	"hint.network":          "Network error. Check your connection and try again.",
	"hint.empty_no_choices": "The service returned no translation. Try again or switch models with -m.",
	"hint.empty_blank":      "The service returned an empty translation. Try rephrasing the text.",
	"hint.validation":       "Invalid input: {{.Reason}}.",

	// Remediation blocks, one per failure mode
	"remedy.validation_text": "Provide the text to translate as the first argument, for example:\n  verto \"Hello, world\"",
	"remedy.config_no_env_var": "Cannot determine the API key environment variable for model '{{.Model}}'.\n" +
		"Supported environment variables:\n" +
		"  OPENAI_API_KEY     - OpenAI models\n" +
		"  GOOGLE_AI_API_KEY  - Google Gemini models\n" +
		"Pass the key directly with -k, or set the matching environment variable.",
	"remedy.auth_unset": "The {{.EnvVar}} environment variable is not set.\n" +
		"Set it with:\n" +
		"  export {{.EnvVar}}=<your-api-key>\n" +
		"Get a key at {{.CredentialURL}}\n" +
		"Or pass the key directly with -k.",
	"remedy.auth_empty": "The {{.EnvVar}} environment variable is set but empty.\n" +
		"Set it with:\n" +
		"  export {{.EnvVar}}=<your-api-key>\n" +
		"Get a key at {{.CredentialURL}}\n" +
		"Or pass the key directly with -k.",
	"remedy.auth_rejected": "The provider rejected the credentials.\n" +
		"Check that the key is valid and has access to model '{{.Model}}'.\n" +
		"Pass a different key with -k or update the environment variable.",
	"remedy.model_not_found_header": "Supported models:",
	"remedy.model_not_found_footer": "Choose a model with -m, or use -u to target a custom endpoint directly.",
	"remedy.endpoint_not_found": "The endpoint was not found (HTTP 404).\n" +
		"Check the custom URL passed with -u, or run 'verto --list-models' for the built-in endpoints.",
	"remedy.rate_limited": "The provider throttled the request.\n" +
		"Wait a moment and retry, or switch to a model with more quota headroom.",
	"remedy.api":     "Inspect the provider response above, then check the request parameters and your account permissions.",
	"remedy.network": "Check your internet connection and proxy settings, then retry.\nIf the problem persists the provider may be unreachable from your network.",
	"remedy.empty":   "Run the same command again, try different wording, or pick another model with -m.",

	// Footer appended to failures that happen while calling the API
	"trouble.footer": "Translation failed. Troubleshooting:\n" +
		"  1. Check your network connection\n" +
		"  2. Verify the API key is correct\n" +
		"  3. Confirm the model name is valid (see --list-models)\n" +
		"  4. If using a custom URL, verify its format",

	// --list-models output
	"list.header":        "Supported models:",
	"list.keys_note":     "API keys come from the OPENAI_API_KEY or GOOGLE_AI_API_KEY environment variables; -k overrides both.",
	"list.default_model": "Default model: {{.Model}}",
}
