package domain

import "strings"

// GuideStrings holds the per-language section titles and default templates.
// DefaultWelcome carries a {property_name} placeholder.
type GuideStrings struct {
	Welcome          string
	WelcomeGuide     string
	Access           string
	Equipment        string
	Neighborhood     string
	Checkout         string
	Emergency        string
	Map              string
	EmergencyNumbers string
	DefaultWelcome   string
	DefaultCheckout  string
}

const DefaultLanguage = "fr"

var translations = map[string]GuideStrings{
	"fr": {
		Welcome:      "Bienvenue",
		WelcomeGuide: "Guide d'accueil",
		Access:       "Accès au logement",
		Equipment:    "Équipements",
		Neighborhood: "Le quartier",
		Checkout:     "Instructions de départ",
		Emergency:    "Numéros utiles",
		Map:          "Carte",
		EmergencyNumbers: "Propriétaire: +33 6 XX XX XX XX\n" +
			"Urgences: 112\nPolice: 17\nPompiers: 18\nSAMU: 15",
		DefaultWelcome: "Nous sommes ravis de vous accueillir dans notre {property_name} ! " +
			"Nous avons préparé ce guide pour rendre votre séjour aussi agréable que possible.",
		DefaultCheckout: "☐ Fermer toutes les fenêtres\n☐ Éteindre tous les appareils électriques\n" +
			"☐ Vider les poubelles\n☐ Laisser les clés dans la boîte\n☐ Vérifier de ne rien oublier",
	},
	"en": {
		Welcome:      "Welcome",
		WelcomeGuide: "Welcome Guide",
		Access:       "Property Access",
		Equipment:    "Equipment",
		Neighborhood: "The Neighborhood",
		Checkout:     "Check-out Instructions",
		Emergency:    "Emergency Contacts",
		Map:          "Map",
		EmergencyNumbers: "Owner: +33 6 XX XX XX XX\n" +
			"Emergency: 112\nPolice: 17\nFire Department: 18\nMedical Emergency: 15",
		DefaultWelcome: "We are delighted to welcome you to our {property_name}! " +
			"We have prepared this guide to make your stay as pleasant as possible.",
		DefaultCheckout: "☐ Close all windows\n☐ Turn off all electrical appliances\n" +
			"☐ Empty the trash\n☐ Leave keys in the box\n☐ Check you haven't forgotten anything",
	},
	"es": {
		Welcome:      "Bienvenido",
		WelcomeGuide: "Guía de Bienvenida",
		Access:       "Acceso a la propiedad",
		Equipment:    "Equipamiento",
		Neighborhood: "El barrio",
		Checkout:     "Instrucciones de salida",
		Emergency:    "Contactos de emergencia",
		Map:          "Mapa",
		EmergencyNumbers: "Propietario: +33 6 XX XX XX XX\n" +
			"Emergencias: 112\nPolicía: 17\nBomberos: 18\nEmergencia médica: 15",
		DefaultWelcome: "¡Estamos encantados de darle la bienvenida a nuestro {property_name}! " +
			"Hemos preparado esta guía para que su estancia sea lo más agradable posible.",
		DefaultCheckout: "☐ Cerrar todas las ventanas\n☐ Apagar todos los aparatos eléctricos\n" +
			"☐ Vaciar la basura\n☐ Dejar las llaves en la caja\n☐ Verificar que no olvide nada",
	},
	"de": {
		Welcome:      "Willkommen",
		WelcomeGuide: "Willkommensführer",
		Access:       "Zugang zur Unterkunft",
		Equipment:    "Ausstattung",
		Neighborhood: "Die Nachbarschaft",
		Checkout:     "Check-out Anweisungen",
		Emergency:    "Notfallkontakte",
		Map:          "Karte",
		EmergencyNumbers: "Eigentümer: +33 6 XX XX XX XX\n" +
			"Notruf: 112\nPolizei: 17\nFeuerwehr: 18\nRettungsdienst: 15",
		DefaultWelcome: "Wir freuen uns, Sie in unserem {property_name} willkommen zu heißen! " +
			"Wir haben diesen Leitfaden vorbereitet, um Ihren Aufenthalt so angenehm wie möglich zu gestalten.",
		DefaultCheckout: "☐ Alle Fenster schließen\n☐ Alle elektrischen Geräte ausschalten\n" +
			"☐ Müll leeren\n☐ Schlüssel in der Box lassen\n☐ Überprüfen, dass nichts vergessen wurde",
	},
	"it": {
		Welcome:      "Benvenuto",
		WelcomeGuide: "Guida di Benvenuto",
		Access:       "Accesso alla proprietà",
		Equipment:    "Attrezzature",
		Neighborhood: "Il quartiere",
		Checkout:     "Istruzioni per il check-out",
		Emergency:    "Contatti di emergenza",
		Map:          "Mappa",
		EmergencyNumbers: "Proprietario: +33 6 XX XX XX XX\n" +
			"Emergenze: 112\nPolizia: 17\nVigili del fuoco: 18\nEmergenza medica: 15",
		DefaultWelcome: "Siamo lieti di darvi il benvenuto nel nostro {property_name}! " +
			"Abbiamo preparato questa guida per rendere il vostro soggiorno il più piacevole possibile.",
		DefaultCheckout: "☐ Chiudere tutte le finestre\n☐ Spegnere tutti gli apparecchi elettrici\n" +
			"☐ Svuotare la spazzatura\n☐ Lasciare le chiavi nella scatola\n☐ Verificare di non aver dimenticato nulla",
	},
	"pt": {
		Welcome:      "Bem-vindo",
		WelcomeGuide: "Guia de Boas-vindas",
		Access:       "Acesso à propriedade",
		Equipment:    "Equipamentos",
		Neighborhood: "O bairro",
		Checkout:     "Instruções de check-out",
		Emergency:    "Contatos de emergência",
		Map:          "Mapa",
		EmergencyNumbers: "Proprietário: +33 6 XX XX XX XX\n" +
			"Emergências: 112\nPolícia: 17\nBombeiros: 18\nEmergência médica: 15",
		DefaultWelcome: "Estamos encantados em recebê-lo em nosso {property_name}! " +
			"Preparamos este guia para tornar sua estadia o mais agradável possível.",
		DefaultCheckout: "☐ Fechar todas as janelas\n☐ Desligar todos os aparelhos elétricos\n" +
			"☐ Esvaziar o lixo\n☐ Deixar as chaves na caixa\n☐ Verificar se não esqueceu nada",
	},
	"nl": {
		Welcome:      "Welkom",
		WelcomeGuide: "Welkomstgids",
		Access:       "Toegang tot de woning",
		Equipment:    "Apparatuur",
		Neighborhood: "De buurt",
		Checkout:     "Uitcheck instructies",
		Emergency:    "Noodcontacten",
		Map:          "Kaart",
		EmergencyNumbers: "Eigenaar: +33 6 XX XX XX XX\n" +
			"Noodgevallen: 112\nPolitie: 17\nBrandweer: 18\nMedische noodhulp: 15",
		DefaultWelcome: "We zijn verheugd u te verwelkomen in onze {property_name}! " +
			"We hebben deze gids voorbereid om uw verblijf zo aangenaam mogelijk te maken.",
		DefaultCheckout: "☐ Sluit alle ramen\n☐ Schakel alle elektrische apparaten uit\n" +
			"☐ Leeg de prullenbak\n☐ Laat de sleutels in de doos\n☐ Controleer of u niets bent vergeten",
	},
	"ru": {
		Welcome:      "Добро пожаловать",
		WelcomeGuide: "Путеводитель",
		Access:       "Доступ к жилью",
		Equipment:    "Оборудование",
		Neighborhood: "Район",
		Checkout:     "Инструкции по выезду",
		Emergency:    "Экстренные контакты",
		Map:          "Карта",
		EmergencyNumbers: "Владелец: +33 6 XX XX XX XX\n" +
			"Экстренная помощь: 112\nПолиция: 17\nПожарная служба: 18\nСкорая помощь: 15",
		DefaultWelcome: "Мы рады приветствовать вас в нашем {property_name}! " +
			"Мы подготовили это руководство, чтобы сделать ваше пребывание максимально приятным.",
		DefaultCheckout: "☐ Закрыть все окна\n☐ Выключить все электроприборы\n" +
			"☐ Вынести мусор\n☐ Оставить ключи в коробке\n☐ Проверить, что ничего не забыто",
	},
	"zh": {
		Welcome:      "欢迎",
		WelcomeGuide: "欢迎指南",
		Access:       "房产入住",
		Equipment:    "设备",
		Neighborhood: "周边环境",
		Checkout:     "退房须知",
		Emergency:    "紧急联系",
		Map:          "地图",
		EmergencyNumbers: "房东: +33 6 XX XX XX XX\n" +
			"紧急电话: 112\n警察: 17\n消防: 18\n医疗急救: 15",
		DefaultWelcome:  "欢迎入住我们的{property_name}！我们准备了这份指南，让您的住宿尽可能愉快。",
		DefaultCheckout: "☐ 关闭所有窗户\n☐ 关闭所有电器\n☐ 清空垃圾\n☐ 将钥匙留在盒子里\n☐ 检查是否有遗漏物品",
	},
	"ja": {
		Welcome:      "ようこそ",
		WelcomeGuide: "ウェルカムガイド",
		Access:       "物件へのアクセス",
		Equipment:    "設備",
		Neighborhood: "周辺地域",
		Checkout:     "チェックアウトの手順",
		Emergency:    "緊急連絡先",
		Map:          "地図",
		EmergencyNumbers: "オーナー: +33 6 XX XX XX XX\n" +
			"緊急: 112\n警察: 17\n消防: 18\n救急: 15",
		DefaultWelcome:  "私たちの{property_name}へようこそ！快適にお過ごしいただけるよう、このガイドを準備しました。",
		DefaultCheckout: "☐ すべての窓を閉める\n☐ すべての電気機器を切る\n☐ ゴミを捨てる\n☐ 鍵をボックスに入れる\n☐ 忘れ物がないか確認する",
	},
	"ar": {
		Welcome:      "مرحباً",
		WelcomeGuide: "دليل الترحيب",
		Access:       "الوصول إلى العقار",
		Equipment:    "المعدات",
		Neighborhood: "الحي",
		Checkout:     "تعليمات المغادرة",
		Emergency:    "أرقام الطوارئ",
		Map:          "خريطة",
		EmergencyNumbers: "المالك: +33 6 XX XX XX XX\n" +
			"الطوارئ: 112\nالشرطة: 17\nالإطفاء: 18\nالإسعاف: 15",
		DefaultWelcome:  "نرحب بكم في {property_name}! لقد أعددنا هذا الدليل لجعل إقامتكم ممتعة قدر الإمكان.",
		DefaultCheckout: "☐ إغلاق جميع النوافذ\n☐ إطفاء جميع الأجهزة الكهربائية\n☐ إفراغ سلة المهملات\n☐ ترك المفاتيح في الصندوق\n☐ التحقق من عدم نسيان أي شيء",
	},
	"pl": {
		Welcome:      "Witamy",
		WelcomeGuide: "Przewodnik powitalny",
		Access:       "Dostęp do nieruchomości",
		Equipment:    "Wyposażenie",
		Neighborhood: "Okolica",
		Checkout:     "Instrukcje wymeldowania",
		Emergency:    "Kontakty alarmowe",
		Map:          "Mapa",
		EmergencyNumbers: "Właściciel: +33 6 XX XX XX XX\n" +
			"Pogotowie: 112\nPolicja: 17\nStraż pożarna: 18\nPogotowie medyczne: 15",
		DefaultWelcome: "Cieszymy się, że możemy powitać Państwa w naszym {property_name}! " +
			"Przygotowaliśmy ten przewodnik, aby uczynić Państwa pobyt jak najprzyjemniejszym.",
		DefaultCheckout: "☐ Zamknąć wszystkie okna\n☐ Wyłączyć wszystkie urządzenia elektryczne\n" +
			"☐ Opróżnić kosze na śmieci\n☐ Zostawić klucze w skrzynce\n☐ Sprawdzić, czy niczego nie zapomniano",
	},
}

// KnownLanguage reports whether lang has a translation table.
func KnownLanguage(lang string) bool {
	_, ok := translations[lang]
	return ok
}

// Strings returns the translation table for lang, falling back to French.
func Strings(lang string) GuideStrings {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[DefaultLanguage]
}

// DefaultGuide is the template shown for a (property, language) pair that has
// never been saved: welcome with the property name substituted, checkout
// checklist, emergency numbers, everything else blank.
func DefaultGuide(lang, propertyName string) GuideContent {
	t := Strings(lang)
	return GuideContent{
		Welcome:   strings.ReplaceAll(t.DefaultWelcome, "{property_name}", propertyName),
		Checkout:  t.DefaultCheckout,
		Emergency: t.EmergencyNumbers,
	}
}
