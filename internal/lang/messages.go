package lang

type MessageID string

const (
	JoinRequiredMsgID     MessageID = "join_required"
	JoinThanksMsgID       MessageID = "join_thanks"
	StillNotMemberMsgID   MessageID = "still_not_member"
	JoinChannelBtnMsgID   MessageID = "join_channel_btn"
	CheckMembershipBtnID  MessageID = "check_membership_btn"
	WelcomeMsgID          MessageID = "welcome"
	ProcessingLinkMsgID   MessageID = "processing_link"
	ChooseFormatMsgID     MessageID = "choose_format"
	NoFormatsMsgID        MessageID = "no_formats"
	InvalidLinkMsgID      MessageID = "invalid_link"
	InvalidSelectionMsgID MessageID = "invalid_selection"
	DownloadingMsgID      MessageID = "downloading"
	DownloadDoneMsgID     MessageID = "download_done"
	DownloadFailedMsgID   MessageID = "download_failed"
	AudioLabelMsgID       MessageID = "audio_label"
	AudioCaptionMsgID     MessageID = "audio_caption"
	VideoCaptionMsgID     MessageID = "video_caption"
)

var messages = map[MessageID]map[string]string{
	JoinRequiredMsgID: {
		"en": "⚠️ To use this bot, you need to join our Telegram channel first!",
		"ru": "⚠️ Чтобы пользоваться ботом, сначала подпишитесь на наш Telegram-канал!",
	},
	JoinThanksMsgID: {
		"en": "✅ Thank you for joining the channel! You can now use the bot. Send me a YouTube link to get started.",
		"ru": "✅ Спасибо за подписку на канал! Теперь можно пользоваться ботом. Отправьте ссылку на YouTube, чтобы начать.",
	},
	StillNotMemberMsgID: {
		"en": "⚠️ You are not a member of our channel. Please join here:",
		"ru": "⚠️ Вы не подписаны на наш канал. Подпишитесь здесь:",
	},
	JoinChannelBtnMsgID: {
		"en": "Join Channel",
		"ru": "Подписаться",
	},
	CheckMembershipBtnID: {
		"en": "Check Membership",
		"ru": "Проверить подписку",
	},
	WelcomeMsgID: {
		"en": "✅ Welcome! Send me a YouTube link to download videos or audio.",
		"ru": "✅ Добро пожаловать! Отправьте ссылку на YouTube, чтобы скачать видео или аудио.",
	},
	ProcessingLinkMsgID: {
		"en": "🎥 Processing your YouTube link... Please wait.",
		"ru": "🎥 Обрабатываю вашу ссылку на YouTube... Подождите.",
	},
	ChooseFormatMsgID: {
		"en": "Choose your format:",
		"ru": "Выберите формат:",
	},
	NoFormatsMsgID: {
		"en": "❌ No suitable formats found.",
		"ru": "❌ Подходящие форматы не найдены.",
	},
	InvalidLinkMsgID: {
		"en": "❌ Please send a valid YouTube link.",
		"ru": "❌ Пожалуйста, отправьте корректную ссылку на YouTube.",
	},
	InvalidSelectionMsgID: {
		"en": "❌ Invalid format selection. Please try again.",
		"ru": "❌ Неверный выбор формата. Попробуйте ещё раз.",
	},
	DownloadingMsgID: {
		"en": "⏳ Downloading... Please wait.",
		"ru": "⏳ Загрузка... Подождите.",
	},
	DownloadDoneMsgID: {
		"en": "✅ Download completed!",
		"ru": "✅ Загрузка завершена!",
	},
	DownloadFailedMsgID: {
		"en": "❌ Failed to download. Please try again.",
		"ru": "❌ Не удалось скачать. Попробуйте ещё раз.",
	},
	AudioLabelMsgID: {
		"en": "Audio (MP3)",
		"ru": "Аудио (MP3)",
	},
	AudioCaptionMsgID: {
		"en": "🎵 %s",
		"ru": "🎵 %s",
	},
	VideoCaptionMsgID: {
		"en": "🎥 %s",
		"ru": "🎥 %s",
	},
}
