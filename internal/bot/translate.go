package bot

import "github.com/NastyaGoryachaya/crypto-tracker/internal/ports/errcode"

func translateBotError(code errcode.Code) string {
	switch code {
	case errcode.NotFoundCoins:
		return "Валюта не найдена"
	case errcode.NotFoundPrices:
		return "Данные о цене не найдены"
	case errcode.Upstream:
		return "Источник цен недоступен, попробуйте позже"
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}
