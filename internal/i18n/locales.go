package i18n

// Static UI dictionaries. Uzbek is complete; the other languages may lag
// behind it and rely on the TranslatePath fallback.
var dictionaries = map[string]map[string]any{
	LangUz: uz,
	LangRu: ru,
	LangEn: en,
}

var uz = map[string]any{
	"app": map[string]any{
		"name": "PureClean Kirxonasi",
	},
	"sidebar": map[string]any{
		"dashboard": "Boshqaruv paneli",
		"orders":    "Buyurtmalar",
		"employees": "Xodimlar",
		"expenses":  "Xarajatlar",
		"reports":   "Hisobotlar",
		"settings":  "Sozlamalar",
		"companies": "Kompaniyalar",
	},
	"header": map[string]any{
		"superadminTitle": "Superadmin paneli",
		"adminSubtitle":   "Kompaniya boshqaruv paneli",
		"superadminName":  "Superadmin",
		"adminName":       "Admin",
	},
	"login": map[string]any{
		"title":        "Tizimga kirish",
		"username":     "Login",
		"password":     "Parol",
		"submit":       "Kirish",
		"invalid":      "Login yoki parol noto‘g‘ri",
		"disabledHint": "Kompaniya faol emas",
	},
	"orders": map[string]any{
		"status": map[string]any{
			"NEW":       "Yangi",
			"WASHING":   "Yuvishda",
			"READY":     "Tayyor",
			"DELIVERED": "Yetkazilgan",
		},
		"searchPlaceholder": "ID, ism yoki telefon bo‘yicha qidirish...",
	},
	"settingsPage": map[string]any{
		"title":         "Sozlamalar",
		"languageLabel": "Til",
		"currencyLabel": "Valyuta",
		"themeLabel":    "Mavzu (tema)",
		"lightTheme":    "Yorug‘ (light)",
		"darkTheme":     "Tungi (dark)",
	},
}

var ru = map[string]any{
	"app": map[string]any{
		"name": "Прачечная PureClean",
	},
	"sidebar": map[string]any{
		"dashboard": "Панель управления",
		"orders":    "Заказы",
		"employees": "Сотрудники",
		"expenses":  "Расходы",
		"reports":   "Отчёты",
		"settings":  "Настройки",
		"companies": "Компании",
	},
	"header": map[string]any{
		"superadminTitle": "Панель супер-админа",
		"adminSubtitle":   "Панель управления компанией",
		"superadminName":  "Суперадмин",
		"adminName":       "Админ",
	},
	"login": map[string]any{
		"title":    "Вход в систему",
		"username": "Логин",
		"password": "Пароль",
		"submit":   "Войти",
		"invalid":  "Неверный логин или пароль",
	},
	"orders": map[string]any{
		"status": map[string]any{
			"NEW":       "Новый",
			"WASHING":   "В стирке",
			"READY":     "Готов",
			"DELIVERED": "Выдан",
		},
	},
	"settingsPage": map[string]any{
		"title":         "Настройки",
		"languageLabel": "Язык",
		"currencyLabel": "Валюта",
	},
}

var en = map[string]any{
	"app": map[string]any{
		"name": "PureClean Laundry",
	},
	"sidebar": map[string]any{
		"dashboard": "Dashboard",
		"orders":    "Orders",
		"employees": "Employees",
		"expenses":  "Expenses",
		"reports":   "Reports",
		"settings":  "Settings",
		"companies": "Companies",
	},
	"login": map[string]any{
		"title":    "Sign in",
		"username": "Username",
		"password": "Password",
		"submit":   "Sign in",
		"invalid":  "Invalid username or password",
	},
	"orders": map[string]any{
		"status": map[string]any{
			"NEW":       "New",
			"WASHING":   "Washing",
			"READY":     "Ready",
			"DELIVERED": "Delivered",
		},
	},
}
