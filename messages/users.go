package messages

// UserMessages cover accounts and authentication.
var UserMessages = map[string]Template{
	"USER_NOT_FOUND": {
		ID: "USER_NOT_FOUND",
		Messages: map[string]string{
			"en": "User not found",
			"uz": "Foydalanuvchi topilmadi",
			"ru": "Пользователь не найден",
		},
		StatusCode: 404,
	},
	"AUTHENTICATION_FAILED": {
		ID: "AUTHENTICATION_FAILED",
		Messages: map[string]string{
			"en": "Authentication failed",
			"uz": "Autentifikatsiya muvaffaqiyatsiz",
			"ru": "Аутентификация не удалась",
		},
		StatusCode: 401,
	},
	"INVALID_CREDENTIALS": {
		ID: "INVALID_CREDENTIALS",
		Messages: map[string]string{
			"en": "Invalid credentials",
			"uz": "Noto'g'ri ma'lumotlar",
			"ru": "Неверные учетные данные",
		},
		StatusCode: 401,
	},
	"EMAIL_ALREADY_EXISTS": {
		ID: "EMAIL_ALREADY_EXISTS",
		Messages: map[string]string{
			"en": "Email already registered",
			"uz": "Email allaqachon ro'yxatdan o'tgan",
			"ru": "Email уже зарегистрирован",
		},
		StatusCode: 400,
	},
	"USERNAME_ALREADY_EXISTS": {
		ID: "USERNAME_ALREADY_EXISTS",
		Messages: map[string]string{
			"en": "Username already taken",
			"uz": "Username allaqachon band",
			"ru": "Имя пользователя уже занято",
		},
		StatusCode: 400,
	},
	"INVALID_TOKEN": {
		ID: "INVALID_TOKEN",
		Messages: map[string]string{
			"en": "Token is invalid or expired",
			"uz": "Token yaroqsiz yoki muddati tugagan",
			"ru": "Токен недействителен или истек",
		},
		StatusCode: 401,
	},
}
