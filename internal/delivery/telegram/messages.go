// messages.go contains message templates for Telegram.

package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Chendasum/7daymoneyflowreset/internal/service"
)

const (
	msgWelcome = `🌅 ស្វាគមន៍មកកាន់ 7-Day Money Flow Reset™!

កម្មវិធីផ្លាស់ប្ដូរហិរញ្ញវត្ថុក្នុងរយៈពេល ៧ ថ្ងៃ។

🎯 ចាប់ផ្តើមដោយឥតគិតថ្លៃ:
/financial_quiz - ពិនិត្យសុខភាពហិរញ្ញវត្ថុ ២ នាទី
/pricing - មើលកម្មវិធីពេញលេញ
/help - ជំនួយ`

	msgPricing = `💰 កម្មវិធី 7-Day Money Flow Reset™

🎯 Essential - $47
• មេរៀន ៧ ថ្ងៃពេញលេញ
• ការតាមដានការរីកចម្រើន

🚀 Premium - $97
• អ្វីៗទាំងអស់ក្នុង Essential
• ការជំនួយពិសេស និងទិន្នន័យលម្អិត

👑 VIP - $197
• អ្វីៗទាំងអស់ក្នុង Premium
• កក់ពេលជួប 1-on-1 និង Capital Clarity Sessions

ប្រើ /payment ដើម្បីទទួលការណែនាំទូទាត់`

	msgAdminContact = "🚀 ទាក់ទងអ្នកគ្រប់គ្រងតាម @moneyflow_admin — អ្នកនឹងទទួលបានការឆ្លើយតបជាអាទិភាព។"
	msgBookSession  = "👑 កក់ពេលជួប 1-on-1 របស់អ្នក: សរសេរថ្ងៃនិងម៉ោងដែលអ្នកទំនេរ ហើយក្រុមការងារនឹងបញ្ជាក់ជូន។"

	msgInternalError  = "❌ មានបញ្ហា។ សូមសាកល្បងម្តងទៀត។"
	msgUnknownCommand = "មិនស្គាល់ពាក្យបញ្ជានេះទេ។ ប្រើ /help ដើម្បីមើលពាក្យបញ្ជាទាំងអស់។"
	msgTextHint       = `សរសេរ "QUIZ" ដើម្បីពិនិត្យសុខភាពហិរញ្ញវត្ថុ ឬប្រើ /help។`
)

func whoamiText(status service.TierStatus) string {
	text := fmt.Sprintf("%s កម្រិត: %s", status.Badge, status.Info.Name)
	if status.Price > 0 {
		text += fmt.Sprintf("\n💵 តម្លៃបានទូទាត់: $%.0f", status.Price)
	}
	if status.PaidAt != nil {
		text += fmt.Sprintf("\n📅 ទូទាត់នៅ: %s", status.PaidAt.Format("2006-01-02"))
	}
	return text
}

// newPlainMessage creates a plain message without parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}
