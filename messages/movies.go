package messages

// MovieMessages cover the catalog, rating and comment domains.
var MovieMessages = map[string]Template{
	"MOVIE_NOT_FOUND": {
		ID: "MOVIE_NOT_FOUND",
		Messages: map[string]string{
			"en": "Movie not found",
			"uz": "Kino topilmadi",
			"ru": "Фильм не найден",
		},
		StatusCode: 404,
	},
	"PREMIUM_REQUIRED": {
		ID: "PREMIUM_REQUIRED",
		Messages: map[string]string{
			"en": "Premium subscription required to watch this movie",
			"uz": "Bu kinoni ko'rish uchun premium obuna talab qilinadi",
			"ru": "Для просмотра этого фильма требуется премиум подписка",
		},
		StatusCode: 403,
	},
	"GENRE_NOT_FOUND": {
		ID: "GENRE_NOT_FOUND",
		Messages: map[string]string{
			"en": "Genre not found",
			"uz": "Janr topilmadi",
			"ru": "Жанр не найден",
		},
		StatusCode: 404,
	},
	"ALREADY_RATED": {
		ID: "ALREADY_RATED",
		Messages: map[string]string{
			"en": "You have already rated this movie",
			"uz": "Siz bu kinoni allaqachon baholagansiz",
			"ru": "Вы уже оценили этот фильм",
		},
		StatusCode: 400,
	},
	"INVALID_RATING": {
		ID: "INVALID_RATING",
		Messages: map[string]string{
			"en": "Rating must be between 1 and 10",
			"uz": "Reyting 1 dan 10 gacha bo'lishi kerak",
			"ru": "Оценка должна быть от 1 до 10",
		},
		StatusCode: 400,
	},
	"COMMENT_NOT_FOUND": {
		ID: "COMMENT_NOT_FOUND",
		Messages: map[string]string{
			"en": "Comment not found",
			"uz": "Kommentariya topilmadi",
			"ru": "Комментарий не найден",
		},
		StatusCode: 404,
	},
	"ALREADY_FAVORITED": {
		ID: "ALREADY_FAVORITED",
		Messages: map[string]string{
			"en": "Movie is already in your favorites",
			"uz": "Kino allaqachon sevimlilaringizda",
			"ru": "Фильм уже в избранном",
		},
		StatusCode: 400,
	},
	"CODE_NOT_FOUND": {
		ID: "CODE_NOT_FOUND",
		Messages: map[string]string{
			"en": "Premium code not found or already used",
			"uz": "Premium kod topilmadi yoki allaqachon ishlatilgan",
			"ru": "Премиум код не найден или уже использован",
		},
		StatusCode: 404,
	},
	"PREMIUM_GRANTED": {
		ID: "PREMIUM_GRANTED",
		Messages: map[string]string{
			"en": "Premium activated until {until}",
			"uz": "Premium {until} gacha faollashtirildi",
			"ru": "Премиум активирован до {until}",
		},
		StatusCode: 200,
	},
}
