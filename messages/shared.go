package messages

// SharedMessages are the generic envelope keys used by every endpoint.
var SharedMessages = map[string]Template{
	"SUCCESS_MESSAGE": {
		ID: "SUCCESS_MESSAGE",
		Messages: map[string]string{
			"en": "Operation completed successfully",
			"uz": "Operatsiya muvaffaqiyatli yakunlandi",
			"ru": "Операция успешно завершена",
		},
		StatusCode: 200,
	},
	"CREATED": {
		ID: "CREATED",
		Messages: map[string]string{
			"en": "Resource created successfully",
			"uz": "Resurs muvaffaqiyatli yaratildi",
			"ru": "Ресурс успешно создан",
		},
		StatusCode: 201,
	},
	"UPDATED": {
		ID: "UPDATED",
		Messages: map[string]string{
			"en": "Resource updated successfully",
			"uz": "Resurs muvaffaqiyatli yangilandi",
			"ru": "Ресурс успешно обновлен",
		},
		StatusCode: 200,
	},
	"DELETED": {
		ID: "DELETED",
		Messages: map[string]string{
			"en": "Resource deleted successfully",
			"uz": "Resurs muvaffaqiyatli o'chirildi",
			"ru": "Ресурс успешно удален",
		},
		StatusCode: 200,
	},
	"VALIDATION_ERROR": {
		ID: "VALIDATION_ERROR",
		Messages: map[string]string{
			"en": "Invalid input data",
			"uz": "Noto'g'ri ma'lumot kiritildi",
			"ru": "Неверные входные данные",
		},
		StatusCode: 400,
	},
	"NOT_FOUND": {
		ID: "NOT_FOUND",
		Messages: map[string]string{
			"en": "Resource not found",
			"uz": "Resurs topilmadi",
			"ru": "Ресурс не найден",
		},
		StatusCode: 404,
	},
	"PERMISSION_DENIED": {
		ID: "PERMISSION_DENIED",
		Messages: map[string]string{
			"en": "You don't have permission to perform this action",
			"uz": "Sizda bu amalni bajarish uchun ruxsat yo'q",
			"ru": "У вас нет прав для выполнения этого действия",
		},
		StatusCode: 403,
	},
	"UNAUTHORIZED": {
		ID: "UNAUTHORIZED",
		Messages: map[string]string{
			"en": "Authentication required",
			"uz": "Autentifikatsiya talab qilinadi",
			"ru": "Требуется аутентификация",
		},
		StatusCode: 401,
	},
	"INTERNAL_SERVER_ERROR": {
		ID: "INTERNAL_SERVER_ERROR",
		Messages: map[string]string{
			"en": "Internal server error occurred",
			"uz": "Ichki server xatosi yuz berdi",
			"ru": "Произошла внутренняя ошибка сервера",
		},
		StatusCode: 500,
	},
}
