package locales

// Messages Chinese (Simplified) translations
var MessagesZhCN = map[string]string{
	// Short hints shown after the technical error detail
	"hint.model_not_found":  "不支持的模型 '{{.Model}}'，请使用 --list-models 查看支持的模型。",
	"hint.config":           "配置错误，请检查环境变量与命令行参数。",
	"hint.auth":             "认证失败，请检查 API 密钥配置。",
	"hint.api_client":       "请求错误 (HTTP {{.Status}})，请检查请求参数和 API 权限。",
	"hint.api_server":       "服务器错误 (HTTP {{.Status}})，服务暂时不可用，请稍后重试。",
	"hint.api":              "API 调用失败，请检查网络连接、API 密钥和模型名称。",
	"hint.rate_limited":     "请求过于频繁，请稍后重试。",
	"hint.network_timeout":  "请求超时，请稍后重试。",
	"hint.network_connect":  "无法连接到服务器，请检查网络连接。",
	"hint.network":          "网络错误，请检查网络连接后重试。",
	"hint.empty_no_choices": "服务未返回翻译结果，请重试或使用 -m 更换模型。",
	"hint.empty_blank":      "服务返回了空白的翻译结果，请调整输入文本后重试。",
	"hint.validation":       "输入无效: {{.Reason}}。",

	// Remediation blocks, one per failure mode
	"remedy.validation_text": "请将要翻译的文本作为第一个参数，例如:\n  verto \"你好，世界\"",
	"remedy.config_no_env_var": "无法确定模型 '{{.Model}}' 的 API 密钥环境变量。\n" +
		"支持的环境变量:\n" +
		"  OPENAI_API_KEY     - 用于 OpenAI 模型\n" +
		"  GOOGLE_AI_API_KEY  - 用于 Google Gemini 模型\n" +
		"请使用 -k 参数直接指定 API 密钥，或设置相应的环境变量。",
	"remedy.auth_unset": "环境变量 {{.EnvVar}} 未设置。\n" +
		"请设置:\n" +
		"  export {{.EnvVar}}=<your-api-key>\n" +
		"获取密钥: {{.CredentialURL}}\n" +
		"或使用 -k 参数直接指定 API 密钥。",
	"remedy.auth_empty": "环境变量 {{.EnvVar}} 已设置但为空。\n" +
		"请设置:\n" +
		"  export {{.EnvVar}}=<your-api-key>\n" +
		"获取密钥: {{.CredentialURL}}\n" +
		"或使用 -k 参数直接指定 API 密钥。",
	"remedy.auth_rejected": "服务商拒绝了该凭证。\n" +
		"请确认密钥有效且有权访问模型 '{{.Model}}'。\n" +
		"可使用 -k 指定其他密钥，或更新环境变量。",
	"remedy.model_not_found_header": "支持的模型:",
	"remedy.model_not_found_footer": "请使用 -m 选择以上模型之一，或使用 -u 直接指定自定义端点。",
	"remedy.endpoint_not_found": "接口不存在 (HTTP 404)。\n" +
		"请检查 -u 指定的自定义 URL，或运行 'verto --list-models' 查看内置端点。",
	"remedy.rate_limited": "服务商限流了本次请求。\n" +
		"请稍后重试，或更换配额更充足的模型。",
	"remedy.api":     "请查看上方的服务商返回信息，检查请求参数和账号权限。",
	"remedy.network": "请检查网络连接和代理设置后重试。\n如果问题持续存在，可能是服务商在当前网络不可达。",
	"remedy.empty":   "请重新运行命令、调整措辞，或使用 -m 更换模型。",

	// Footer appended to failures that happen while calling the API
	"trouble.footer": "翻译失败。故障排除提示:\n" +
		"  1. 检查网络连接\n" +
		"  2. 验证 API 密钥是否正确\n" +
		"  3. 确认模型名称有效 (使用 --list-models 查看)\n" +
		"  4. 如果使用自定义 URL，请验证其格式",

	// --list-models output
	"list.header":        "支持的模型:",
	"list.keys_note":     "API 密钥来自 OPENAI_API_KEY 或 GOOGLE_AI_API_KEY 环境变量，-k 参数优先。",
	"list.default_model": "默认模型: {{.Model}}",
}
