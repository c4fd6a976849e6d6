package bot

import "strings"

// All user-facing copy lives here. The audience is Taiwanese, hence
// Traditional Chinese throughout.

const helpText = "我是智能過敏菜單助理（AllergyMenu Assistant）\n" +
	"是一個能幫助你快速判斷餐廳菜色是否含有過敏原的智慧助手。\n" +
	"\n" +
	"✨ 主要功能：\n" +
	"上傳餐廳菜單圖片即可自動辨識文字（OCR）\n" +
	"由 AI 分析每道菜可能含有的過敏原\n" +
	"根據你個人的過敏資訊，分類成：\n" +
	"✅ 可食用\n" +
	"❌ 不可食用\n" +
	"⚠️ 需注意\n" +
	"\n" +
	"🔄 過敏資訊可隨時設定與更新\n" +
	"🗂 支援多重過敏源比對（如花生、乳製品、海鮮、蛋類等）\n" +
	"\n" +
	"🧠 本系統透過 OCR + LLM 組合分析，提供快速、直覺、個人化的菜單過敏判定。\n\n" +
	"首先請您用 /setallergy 設定您的過敏原，\n" +
	"並利用 /setapikey 設定您的 Gemini API Key，以處理您的請求"

const (
	apiKeyPromptText  = "請輸入您的 Gemini API Key\n\n輸入 /clear 清除 API Key\n輸入 /cancel 取消"
	apiKeySetText     = "已成功設定 Gemini API Key"
	apiKeyClearedText = "已清除 Gemini API Key"
	cancelledText     = "已取消設定"

	allergiesClearedText = "已清除過敏原"

	noCredentialText = "請先使用 /setapikey 指令設定 Gemini API Key"

	analysisFailedText = "抱歉，這次的菜單分析沒有完成，請稍後再試一次"
	badAPIKeyText      = "您的 Gemini API Key 無法使用，請用 /setapikey 重新設定"

	somethingWrongText = "Sorry, something went wrong."
)

// greeting prefixes the help text with the user's display name when the
// platform provides one.
func greeting(displayName string) string {
	if displayName == "" {
		return helpText
	}
	return displayName + "，您好！\n\n" + helpText
}

// allergyPromptText builds the /setallergy prompt. The current list is shown
// only when non-empty.
func allergyPromptText(current []string) string {
	var b strings.Builder
	b.WriteString("請輸入您對什麼過敏，以逗號(,)分隔\n")
	if len(current) > 0 {
		b.WriteString("目前已設定過敏原:\n")
		b.WriteString(strings.Join(current, "、"))
		b.WriteString("\n")
	}
	b.WriteString("\n輸入 /cancel 取消\n輸入 /clear 清除")
	return b.String()
}

func malformedAllergyText(current []string) string {
	return "不好意思，您輸入的格式不正確\n" + allergyPromptText(current)
}

func allergiesSetText(names []string) string {
	return "已成功設定過敏原：\n" + strings.Join(names, "、")
}

// ackText confirms receipt of a menu photo before the analysis starts.
func ackText(allergies []string) string {
	text := "已收到請求，請稍候..."
	if len(allergies) > 0 {
		return text + "\n我會依據您的過敏原：（" + strings.Join(allergies, "、") + "）給您餐點建議。"
	}
	return text + "\n(目前尚未設定過敏原，可以用 /setallergy 進行設定)"
}
