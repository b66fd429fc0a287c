// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package i18n

// catalogs maps a locale tag to its message table.
var catalogs = map[string]map[string]string{
	"ar": {
		"error_lang_detection": "خطأ أثناء اكتشاف لغة النظام: %[1]v",
		"file_not_found":       "خطأ: الملف غير موجود: %[1]v",
		"json_decode_error":    "خطأ في فك ترميز JSON: %[1]v",
		"start_processing":     "🚀 بدء المعالجة: جاري تحميل %[1]v...",
		"extracted_entries":    "تم استخراج %[1]v مدخلات، منها %[2]v هي سجل Gemini.",
		"converting_markdown":  "جارٍ التحويل إلى Markdown...",
		"appended_to_file":     "تمت إضافة سجلات الدردشة إلى الملف: %[1]v",
		"written_to_file":      "تم كتابة سجلات الدردشة إلى الملف: %[1]v",
		"processing_complete":  "✅ اكتمل: تم حفظ السجل من %[1]v إلى %[2]v في إجمالي %[3]v ملفات.",
		"error_occurred":       "حدث خطأ: %[1]v",
	},
	"bn": {
		"error_lang_detection": "সিস্টেম ভাষা সনাক্তকরণে ত্রুটি: %[1]v",
		"file_not_found":       "ত্রুটি: ফাইল পাওয়া যায়নি: %[1]v",
		"json_decode_error":    "JSON ডিকোড ত্রুটি: %[1]v",
		"start_processing":     "🚀 প্রক্রিয়াকরণ শুরু হচ্ছে: %[1]v লোড হচ্ছে...",
		"extracted_entries":    "%[1]v এন্ট্রি বের করা হয়েছে, যার মধ্যে %[2]v টি Gemini ইতিহাস।",
		"converting_markdown":  "Markdown এ রূপান্তর করা হচ্ছে...",
		"appended_to_file":     "চ্যাট ইতিহাস ফাইলে যোগ করা হয়েছে: %[1]v",
		"written_to_file":      "চ্যাট ইতিহাস ফাইলে লেখা হয়েছে: %[1]v",
		"processing_complete":  "✅ সম্পন্ন: %[1]v থেকে %[2]v পর্যন্ত ইতিহাস মোট %[3]v ফাইলে সংরক্ষণ করা হয়েছে।",
		"error_occurred":       "একটি ত্রুটি ঘটেছে: %[1]v",
	},
	"de": {
		"error_lang_detection": "Fehler bei der Erkennung der Systemsprache: %[1]v",
		"file_not_found":       "Fehler: Datei nicht gefunden: %[1]v",
		"json_decode_error":    "JSON-Decodierungsfehler: %[1]v",
		"start_processing":     "🚀 Verarbeitung gestartet: Lade %[1]v...",
		"extracted_entries":    "%[1]v Einträge extrahiert, davon sind %[2]v Gemini-Verlauf.",
		"converting_markdown":  "Konvertiere zu Markdown...",
		"appended_to_file":     "Chatverläufe an Datei angehängt: %[1]v",
		"written_to_file":      "Chatverläufe in Datei geschrieben: %[1]v",
		"processing_complete":  "✅ Abgeschlossen: Verlauf von %[1]v bis %[2]v in insgesamt %[3]v Dateien gespeichert.",
		"error_occurred":       "Ein Fehler ist aufgetreten: %[1]v",
	},
	"en": {
		"error_lang_detection": "Error while detecting system language: %[1]v",
		"file_not_found":       "Error: File not found: %[1]v",
		"json_decode_error":    "JSON decode error: %[1]v",
		"start_processing":     "🚀 Starting processing: Loading %[1]v...",
		"extracted_entries":    "Extracted %[1]v entries, of which %[2]v are Gemini history.",
		"converting_markdown":  "Converting to Markdown...",
		"appended_to_file":     "Chat histories appended to file: %[1]v",
		"written_to_file":      "Chat histories written to file: %[1]v",
		"processing_complete":  "✅ Completed: Saved history after %[1]v to %[2]v into a total of %[3]v files.",
		"error_occurred":       "An error occurred: %[1]v",
	},
	"es": {
		"error_lang_detection": "Error al detectar el idioma del sistema: %[1]v",
		"file_not_found":       "Error: Archivo no encontrado: %[1]v",
		"json_decode_error":    "Error al decodificar JSON: %[1]v",
		"start_processing":     "🚀 Iniciando procesamiento: Cargando %[1]v...",
		"extracted_entries":    "Se extrajeron %[1]v entradas, de las cuales %[2]v son historial de Gemini.",
		"converting_markdown":  "Convirtiendo a Markdown...",
		"appended_to_file":     "Historiales de chat agregados al archivo: %[1]v",
		"written_to_file":      "Historiales de chat escritos en el archivo: %[1]v",
		"processing_complete":  "✅ Completado: Historial guardado desde %[1]v hasta %[2]v en un total de %[3]v archivos.",
		"error_occurred":       "Ocurrió un error: %[1]v",
	},
	"fa": {
		"error_lang_detection": "خطا در شناسایی زبان سیستم: %[1]v",
		"file_not_found":       "خطا: فایل پیدا نشد: %[1]v",
		"json_decode_error":    "خطای رمزگشایی JSON: %[1]v",
		"start_processing":     "🚀 شروع پردازش: در حال بارگذاری %[1]v...",
		"extracted_entries":    "%[1]v ورودی استخراج شد که %[2]v مورد از آن‌ها تاریخچه Gemini است.",
		"converting_markdown":  "در حال تبدیل به Markdown...",
		"appended_to_file":     "تاریخچه چت به فایل اضافه شد: %[1]v",
		"written_to_file":      "تاریخچه چت در فایل نوشته شد: %[1]v",
		"processing_complete":  "✅ تکمیل شد: تاریخچه از %[1]v تا %[2]v در مجموع در %[3]v فایل ذخیره شد.",
		"error_occurred":       "یک خطا رخ داد: %[1]v",
	},
	"fr": {
		"error_lang_detection": "Erreur lors de la détection de la langue du système : %[1]v",
		"file_not_found":       "Erreur : Fichier non trouvé : %[1]v",
		"json_decode_error":    "Erreur de décodage JSON : %[1]v",
		"start_processing":     "🚀 Démarrage du traitement : Chargement de %[1]v...",
		"extracted_entries":    "%[1]v entrées extraites, dont %[2]v sont l'historique Gemini.",
		"converting_markdown":  "Conversion en Markdown...",
		"appended_to_file":     "Historiques de chat ajoutés au fichier : %[1]v",
		"written_to_file":      "Historiques de chat écrits dans le fichier : %[1]v",
		"processing_complete":  "✅ Terminé : Historique sauvegardé de %[1]v à %[2]v dans un total de %[3]v fichiers.",
		"error_occurred":       "Une erreur est survenue : %[1]v",
	},
	"hi": {
		"error_lang_detection": "त्रुटि: सिस्टम भाषा का पता लगाने में समस्या: %[1]v",
		"file_not_found":       "त्रुटि: फ़ाइल नहीं मिली: %[1]v",
		"json_decode_error":    "JSON डिकोड त्रुटि: %[1]v",
		"start_processing":     "🚀 प्रसंस्करण शुरू हो रहा है: %[1]v लोड हो रहा है...",
		"extracted_entries":    "Ditemukan %[1]v entri, di mana %[2]v adalah riwayat Gemini.",
		"converting_markdown":  "Mengonversi ke Markdown...",
		"appended_to_file":     "Riwayat obrolan ditambahkan ke file: %[1]v",
		"written_to_file":      "Riwayat obrolan ditulis ke file: %[1]v",
		"processing_complete":  "✅ Selesai: Riwayat disimpan dari %[1]v hingga %[2]v dalam total %[3]v file.",
		"error_occurred":       "Terjadi kesalahan: %[1]v",
	},
	"id": {
		"error_lang_detection": "Error saat mendeteksi bahasa sistem: %[1]v",
		"file_not_found":       "Error: File tidak ditemukan: %[1]v",
		"json_decode_error":    "Error decode JSON: %[1]v",
		"start_processing":     "🚀 Memulai pemrosesan: Memuat %[1]v...",
		"extracted_entries":    "Estratti %[1]v voci, di cui %[2]v sono cronologia di Gemini.",
		"converting_markdown":  "Conversione in Markdown...",
		"appended_to_file":     "Cronologia chat aggiunta al file: %[1]v",
		"written_to_file":      "Cronologia chat scritta nel file: %[1]v",
		"processing_complete":  "✅ Completato: Cronologia salvata da %[1]v a %[2]v in un totale di %[3]v file.",
		"error_occurred":       "Si è verificato un errore: %[1]v",
	},
	"ja": {
		"error_lang_detection": "システム言語の検出中にエラーが発生しました: %[1]v",
		"file_not_found":       "エラー: ファイルが見つかりません: %[1]v",
		"json_decode_error":    "JSONデコードエラー: %[1]v",
		"start_processing":     "🚀 処理開始: %[1]v を読み込み中...",
		"extracted_entries":    "%[1]v 件抽出され、うち Gemini の履歴は %[2]v 件ありました。",
		"converting_markdown":  "Markdown に変換中...",
		"appended_to_file":     "チャット履歴をファイルに追記しました: %[1]v",
		"written_to_file":      "チャット履歴をファイルに書き込みました: %[1]v",
		"processing_complete":  "✅ 完了しました: %[1]v より後の %[2]v までの履歴を延べ %[3]v ファイルに分割保存しました。",
		"error_occurred":       "エラーが発生しました: %[1]v",
	},
	"jv": {
		"error_lang_detection": "Kesalahan saat mendeteksi bahasa sistem: %[1]v",
		"file_not_found":       "Kesalahan: Berkas tidak ditemukan: %[1]v",
		"json_decode_error":    "Kesalahan dekode JSON: %[1]v",
		"start_processing":     "🚀 Memulai pemrosesan: Memuat %[1]v...",
		"extracted_entries":    "Ditemukan %[1]v entri, di mana %[2]v adalah riwayat Gemini.",
		"converting_markdown":  "Mengonversi ke Markdown...",
		"appended_to_file":     "Riwayat obrolan ditambahkan ke berkas: %[1]v",
		"written_to_file":      "Riwayat obrolan ditulis ke berkas: %[1]v",
		"processing_complete":  "✅ Selesai: Riwayat disimpan dari %[1]v hingga %[2]v dalam total %[3]v berkas.",
		"error_occurred":       "Terjadi kesalahan: %[1]v",
	},
	"ko": {
		"error_lang_detection": "시스템 언어 설정 감지 중 오류 발생: %[1]v",
		"file_not_found":       "오류: 파일을 찾을 수 없습니다: %[1]v",
		"json_decode_error":    "JSON 디코드 오류: %[1]v",
		"start_processing":     "🚀 처리 시작: %[1]v 로드 중...",
		"extracted_entries":    "%[1]v개의 항목이 추출되었으며, 그 중 %[2]v개는 Gemini 기록입니다.",
		"converting_markdown":  "Markdown으로 변환 중...",
		"appended_to_file":     "채팅 기록이 파일에 추가되었습니다: %[1]v",
		"written_to_file":      "채팅 기록이 파일에 작성되었습니다: %[1]v",
		"processing_complete":  "✅ 완료: %[1]v부터 %[2]v까지의 기록이 총 %[3]v개의 파일에 저장되었습니다.",
		"error_occurred":       "오류가 발생했습니다: %[1]v",
	},
	"mr": {
		"error_lang_detection": "त्रुटी: सिस्टम भाषा ओळखण्यात समस्या: %[1]v",
		"file_not_found":       "त्रुटी: फाइल सापडली नाही: %[1]v",
		"json_decode_error":    "JSON डिकोड त्रुटी: %[1]v",
		"start_processing":     "🚀 प्रक्रिया सुरू होणार आहे: %[1]v लोड होत आहे...",
		"extracted_entries":    "%[1]v नोंदी काढल्या, ज्यापैकी %[2]v Gemini इतिहास आहे.",
		"converting_markdown":  "Markdown मध्ये रूपांतरित करत आहे...",
		"appended_to_file":     "चॅट इतिहास फाइलमध्ये जोडला गेला: %[1]v",
		"written_to_file":      "चॅट इतिहास फाइलमध्ये लिहिला गेला: %[1]v",
		"processing_complete":  "✅ पूर्ण झाले: इतिहास %[1]v पासून %[2]v पर्यंत एकूण %[3]v फाइलमध्ये जतन केला गेला.",
		"error_occurred":       "एक त्रुटी आली आहे: %[1]v",
	},
	"ms": {
		"error_lang_detection": "Ralat semasa mengesan bahasa sistem: %[1]v",
		"file_not_found":       "Ralat: Fail tidak dijumpai: %[1]v",
		"json_decode_error":    "Ralat nyahkod JSON: %[1]v",
		"start_processing":     "🚀 Memulakan pemprosesan: Memuat %[1]v...",
		"extracted_entries":    "Diekstrak %[1]v entri, di mana %[2]v adalah sejarah Gemini.",
		"converting_markdown":  "Menukar kepada Markdown...",
		"appended_to_file":     "Sejarah sembang ditambah ke fail: %[1]v",
		"written_to_file":      "Sejarah sembang ditulis ke fail: %[1]v",
		"processing_complete":  "✅ Selesai: Sejarah disimpan dari %[1]v hingga %[2]v dalam jumlah %[3]v fail.",
		"error_occurred":       "Ralat telah berlaku: %[1]v",
	},
	"pa": {
		"error_lang_detection": "ਸਿਸਟਮ ਭਾਸ਼ਾ ਦਾ ਪਤਾ ਲਗਾਉਂਦੇ ਸਮੇਂ ਤਰੁੱਟੀ: %[1]v",
		"file_not_found":       "ਤਰੁੱਟੀ: ਫਾਈਲ ਨਹੀਂ ਮਿਲੀ: %[1]v",
		"json_decode_error":    "JSON ਡੀਕੋਡ ਤਰੁੱਟੀ: %[1]v",
		"start_processing":     "🚀 ਪ੍ਰਕਿਰਿਆ ਸ਼ੁਰੂ ਹੋ ਰਹੀ ਹੈ: %[1]v ਲੋਡ ਹੋ ਰਿਹਾ ਹੈ...",
		"extracted_entries":    "%[1]v ਐਂਟਰੀਆਂ ਨਿਕਾਲੀਆਂ ਗਈਆਂ, ਜਿਨ੍ਹਾਂ ਵਿੱਚੋਂ %[2]v Gemini ਇਤਿਹਾਸ ਹੈ।",
		"converting_markdown":  "Markdown ਵਿੱਚ ਬਦਲ ਰਿਹਾ ਹੈ...",
		"appended_to_file":     "ਚੈਟ ਇਤਿਹਾਸ ਫਾਈਲ ਵਿੱਚ ਸ਼ਾਮਲ ਕੀਤਾ ਗਿਆ: %[1]v",
		"written_to_file":      "ਚੈਟ ਇਤਿਹਾਸ ਫਾਈਲ ਵਿੱਚ ਲਿਖਿਆ ਗਿਆ: %[1]v",
		"processing_complete":  "✅ ਮੁਕੰਮਲ: ਇਤਿਹਾਸ %[1]v ਤੋਂ %[2]v ਤੱਕ ਕੁੱਲ %[3]v ਫਾਈਲਾਂ ਵਿੱਚ ਸੁਰੱਖਿਅਤ ਕੀਤਾ ਗਿਆ।",
		"error_occurred":       "ਇੱਕ ਤਰੁੱਟੀ ਆਈ: %[1]v",
	},
	"pt": {
		"error_lang_detection": "Erro ao detectar o idioma do sistema: %[1]v",
		"file_not_found":       "Erro: Arquivo não encontrado: %[1]v",
		"json_decode_error":    "Erro de decodificação JSON: %[1]v",
		"start_processing":     "🚀 Iniciando processamento: Carregando %[1]v...",
		"extracted_entries":    "Extraídas %[1]v entradas, das quais %[2]v são histórico do Gemini.",
		"converting_markdown":  "Convertendo para Markdown...",
		"appended_to_file":     "Históricos de chat adicionados ao arquivo: %[1]v",
		"written_to_file":      "Históricos de chat escritos no arquivo: %[1]v",
		"processing_complete":  "✅ Concluído: Histórico salvo de %[1]v a %[2]v em um total de %[3]v arquivos.",
		"error_occurred":       "Ocorreu um erro: %[1]v",
	},
	"ru": {
		"error_lang_detection": "Ошибка при определении языка системы: %[1]v",
		"file_not_found":       "Ошибка: Файл не найден: %[1]v",
		"json_decode_error":    "Ошибка декодирования JSON: %[1]v",
		"start_processing":     "🚀 Начало обработки: Загрузка %[1]v...",
		"extracted_entries":    "Извлечено %[1]v записей, из которых %[2]v относятся к истории Gemini.",
		"converting_markdown":  "Преобразование в Markdown...",
		"appended_to_file":     "История чата добавлена в файл: %[1]v",
		"written_to_file":      "История чата записана в файл: %[1]v",
		"processing_complete":  "✅ Завершено: История сохранена с %[1]v по %[2]v в общей сложности в %[3]v файлах.",
		"error_occurred":       "Произошла ошибка: %[1]v",
	},
	"sw": {
		"error_lang_detection": "Hitilafu wakati wa kugundua lugha ya mfumo: %[1]v",
		"file_not_found":       "Hitilafu: Faili haikupatikana: %[1]v",
		"json_decode_error":    "Hitilafu ya kutafsiri JSON: %[1]v",
		"start_processing":     "🚀 Kuanzia usindikaji: Inapakia %[1]v...",
		"extracted_entries":    "Imechota rekodi %[1]v, ambapo %[2]v ni historia ya Gemini.",
		"converting_markdown":  "Inabadilisha kuwa Markdown...",
		"appended_to_file":     "Historia za mazungumzo zimeongezwa kwenye faili: %[1]v",
		"written_to_file":      "Historia za mazungumzo zimeandikwa kwenye faili: %[1]v",
		"processing_complete":  "✅ Imekamilika: Historia imehifadhiwa kutoka %[1]v hadi %[2]v katika jumla ya faili %[3]v.",
		"error_occurred":       "Hitilafu imetokea: %[1]v",
	},
	"ta": {
		"error_lang_detection": "சிஸ்டம் மொழியை கண்டறிதலில் பிழை: %[1]v",
		"file_not_found":       "பிழை: கோப்பு காணப்படவில்லை: %[1]v",
		"json_decode_error":    "JSON குறியாக்க பிழை: %[1]v",
		"start_processing":     "🚀 செயலாக்கம் தொடங்குகிறது: %[1]v ஏற்றப்படுகிறது...",
		"extracted_entries":    "ดึงข้อมูล %[1]v รายการ ซึ่งมีประวัติของ Gemini จำนวน %[2]v รายการ",
		"converting_markdown":  "กำลังแปลงเป็น Markdown...",
		"appended_to_file":     "ประวัติการแชทถูกเพิ่มลงในไฟล์: %[1]v",
		"written_to_file":      "ประวัติการแชทถูกเขียนลงในไฟล์: %[1]v",
		"processing_complete":  "✅ เสร็จสิ้น: บันทึกประวัติจาก %[1]v ถึง %[2]v ลงในไฟล์ทั้งหมด %[3]v ไฟล์",
		"error_occurred":       "เกิดข้อผิดพลาด: %[1]v",
	},
	"te": {
		"error_lang_detection": "సిస్టమ్ భాషను గుర్తించడంలో లోపం: %[1]v",
		"file_not_found":       "లోపం: ఫైల్ కనుగొనబడలేదు: %[1]v",
		"json_decode_error":    "JSON డీకోడ్ లోపం: %[1]v",
		"start_processing":     "🚀 ప్రాసెసింగ్ ప్రారంభం: %[1]v లోడ్ అవుతోంది...",
		"extracted_entries":    "%[1]v ఎంట్రీలు తీసుకోబడ్డాయి, వాటిలో %[2]v జెమినీ చరిత్ర.",
		"converting_markdown":  "Markdown కు మార్చడం...",
		"appended_to_file":     "చాట్ చరిత్ర ఫైల్‌కు జోడించబడింది: %[1]v",
		"written_to_file":      "చాట్ చరిత్ర ఫైల్‌కు రాయబడింది: %[1]v",
		"processing_complete":  "✅ పూర్తయింది: చరిత్ర %[1]v నుండి %[2]v వరకు మొత్తం %[3]v ఫైళ్లలో సేవ్ చేయబడింది.",
		"error_occurred":       "లోపం సంభవించింది: %[1]v",
	},
	"th": {
		"error_lang_detection": "เกิดข้อผิดพลาดขณะตรวจจับภาษาระบบ: %[1]v",
		"file_not_found":       "ข้อผิดพลาด: ไม่พบไฟล์: %[1]v",
		"json_decode_error":    "ข้อผิดพลาดในการถอดรหัส JSON: %[1]v",
		"start_processing":     "🚀 เริ่มการประมวลผล: กำลังโหลด %[1]v...",
		"extracted_entries":    "ดึงข้อมูล %[1]v รายการ ซึ่งมีประวัติของ Gemini จำนวน %[2]v รายการ",
		"converting_markdown":  "กำลังแปลงเป็น Markdown...",
		"appended_to_file":     "ประวัติการแชทถูกเพิ่มลงในไฟล์: %[1]v",
		"written_to_file":      "ประวัติการแชทถูกเขียนลงในไฟล์: %[1]v",
		"processing_complete":  "✅ เสร็จสิ้น: บันทึกประวัติจาก %[1]v ถึง %[2]v ลงในไฟล์ทั้งหมด %[3]v ไฟล์",
		"error_occurred":       "เกิดข้อผิดพลาด: %[1]v",
	},
	"tr": {
		"error_lang_detection": "Sistem dili algılanırken hata oluştu: %[1]v",
		"file_not_found":       "Hata: Dosya bulunamadı: %[1]v",
		"json_decode_error":    "JSON kod çözme hatası: %[1]v",
		"start_processing":     "🚀 İşleme başlıyor: %[1]v yükleniyor...",
		"extracted_entries":    "%[1]v giriş çıkarıldı, bunların %[2]v tanesi Gemini geçmişi.",
		"converting_markdown":  "Markdown'a dönüştürülüyor...",
		"appended_to_file":     "Sohbet geçmişi dosyaya eklendi: %[1]v",
		"written_to_file":      "Sohbet geçmişi dosyaya yazıldı: %[1]v",
		"processing_complete":  "✅ Tamamlandı: %[1]v ile %[2]v arasındaki geçmiş toplam %[3]v dosyaya kaydedildi.",
		"error_occurred":       "Bir hata oluştu: %[1]v",
	},
	"uk": {
		"error_lang_detection": "Помилка під час визначення мови системи: %[1]v",
		"file_not_found":       "Помилка: Файл не знайдено: %[1]v",
		"json_decode_error":    "Помилка декодування JSON: %[1]v",
		"start_processing":     "🚀 Початок обробки: Завантаження %[1]v...",
		"extracted_entries":    "Вилучено %[1]v записів, з яких %[2]v стосуються історії Gemini.",
		"converting_markdown":  "Конвертація в Markdown...",
		"appended_to_file":     "Історія чату додана до файлу: %[1]v",
		"written_to_file":      "Історія чату записана у файл: %[1]v",
		"processing_complete":  "✅ Завершено: Історія з %[1]v по %[2]v збережена усього в %[3]v файлах.",
		"error_occurred":       "Сталася помилка: %[1]v",
	},
	"ur": {
		"error_lang_detection": "سسٹم زبان کا پتہ لگانے میں خرابی: %[1]v",
		"file_not_found":       "خرابی: فائل نہیں ملی: %[1]v",
		"json_decode_error":    "JSON ڈی کوڈنگ کی خرابی: %[1]v",
		"start_processing":     "🚀 پراسیسنگ شروع ہو رہی ہے: %[1]v لوڈ ہو رہا ہے...",
		"extracted_entries":    "%[1]v اندراجات نکالے گئے، جن میں سے %[2]v Gemini کی تاریخ ہے۔",
		"converting_markdown":  "Markdown میں تبدیل کیا جا رہا ہے...",
		"appended_to_file":     "چیٹ کی تاریخ فائل میں شامل کر دی گئی ہے: %[1]v",
		"written_to_file":      "چیٹ کی تاریخ فائل میں لکھ دی گئی ہے: %[1]v",
		"processing_complete":  "✅ مکمل ہو گیا: تاریخ %[1]v سے %[2]v تک کل %[3]v فائلوں میں محفوظ کر دی گئی ہے۔",
		"error_occurred":       "ایک خرابی پیش آئی: %[1]v",
	},
	"vi": {
		"error_lang_detection": "Lỗi khi phát hiện ngôn ngữ hệ thống: %[1]v",
		"file_not_found":       "Lỗi: Không tìm thấy tệp: %[1]v",
		"json_decode_error":    "Lỗi giải mã JSON: %[1]v",
		"start_processing":     "🚀 Bắt đầu xử lý: Đang tải %[1]v...",
		"extracted_entries":    "Đã trích xuất %[1]v mục, trong đó có %[2]v là lịch sử Gemini.",
		"converting_markdown":  "Đang chuyển đổi sang Markdown...",
		"appended_to_file":     "Lịch sử trò chuyện đã được thêm vào tệp: %[1]v",
		"written_to_file":      "Lịch sử trò chuyện đã được ghi vào tệp: %[1]v",
		"processing_complete":  "✅ Hoàn thành: Đã lưu lịch sử từ %[1]v đến %[2]v vào tổng cộng %[3]v tệp.",
		"error_occurred":       "Đã xảy ra lỗi: %[1]v",
	},
	"zh_CN": {
		"error_lang_detection": "检测系统语言时出错：%[1]v",
		"file_not_found":       "错误：未找到文件：%[1]v",
		"json_decode_error":    "JSON 解码错误：%[1]v",
		"start_processing":     "🚀 开始处理：正在加载 %[1]v...",
		"extracted_entries":    "提取了 %[1]v 条条目，其中 %[2]v 条是 Gemini 历史记录。",
		"converting_markdown":  "正在转换为 Markdown...",
		"appended_to_file":     "聊天历史已追加到文件：%[1]v",
		"written_to_file":      "聊天历史已写入文件：%[1]v",
		"processing_complete":  "✅ 完成：已将 %[1]v 到 %[2]v 之间的历史记录保存到共计 %[3]v 个文件中。",
		"error_occurred":       "发生错误：%[1]v",
	},
	"zh_TW": {
		"error_lang_detection": "檢測系統語言時出錯：%[1]v",
		"file_not_found":       "錯誤：未找到文件：%[1]v",
		"json_decode_error":    "JSON 解碼錯誤：%[1]v",
		"start_processing":     "🚀 開始處理：正在加載 %[1]v...",
		"extracted_entries":    "提取了 %[1]v 條條目，其中 %[2]v 條是 Gemini 歷史記錄。",
		"converting_markdown":  "正在轉換為 Markdown...",
		"appended_to_file":     "聊天歷史已追加到文件：%[1]v",
		"written_to_file":      "聊天歷史已寫入文件：%[1]v",
		"processing_complete":  "✅ 完成：已將 %[1]v 到 %[2]v 之間的歷史記錄保存到共計 %[3]v 個文件中。",
		"error_occurred":       "發生錯誤：%[1]v",
	},
}
