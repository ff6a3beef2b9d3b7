package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "name" or "min"/"max").
type Translator interface {
	Message(code string, data map[string]any) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]any) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_bound":
			return "サイズ境界が不正です"
		case "invalid_name":
			return "型名が不正です"
		case "duplicate_field":
			return "フィールド名が重複しています"
		case "duplicate_discriminant":
			return "判別子が重複しています"
		case "empty_variant_set":
			return "バリアントがありません"
		case "duplicate_name":
			return "型名が重複しています"
		case "unknown_type":
			return "未知の型です"
		case "unbounded_recursion":
			return "有限の値を持たない再帰型です"
		case "schema_sealed":
			return "スキーマは封印済みです"
		case "unresolvable_reference":
			return "参照を解決できません"
		case "malformed_value":
			return "値の形式が不正です"
		case "truncated_value":
			return "値が途中で切れています"
		case "bound_violation":
			return "サイズ境界に違反しています"
		case "out_of_order_key":
			return "キーの順序が不正です"
		case "undeclared_discriminant":
			return "宣言されていない判別子です"
		}
	default: // "en"
		switch code {
		case "invalid_bound":
			return "invalid size bound"
		case "invalid_name":
			return "invalid type name"
		case "duplicate_field":
			return "duplicate field name"
		case "duplicate_discriminant":
			return "duplicate discriminant"
		case "empty_variant_set":
			return "union has no variants"
		case "duplicate_name":
			return "type name already defined"
		case "unknown_type":
			return "unknown type"
		case "unbounded_recursion":
			return "recursive type admits no finite value"
		case "schema_sealed":
			return "schema is sealed"
		case "unresolvable_reference":
			return "unresolvable type reference"
		case "malformed_value":
			return "malformed value"
		case "truncated_value":
			return "truncated value"
		case "bound_violation":
			return "size bound violated"
		case "out_of_order_key":
			return "keys out of canonical order"
		case "undeclared_discriminant":
			return "undeclared discriminant"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]any) string { return currentTranslator.Message(code, data) }
