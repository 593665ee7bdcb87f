package discord

import (
	"context"

	"github.com/corelayer/tilebot/internal/domain"
)

// Message keys into the translation tables.
type msgKey string

const (
	keyNotAvailable msgKey = "not_available"
	keyCooldown     msgKey = "cooldown"
	keyGenericError msgKey = "generic_error"

	keyDrawTitle       msgKey = "draw_title"
	keyDeckEmptyConfig msgKey = "deck_empty_config"
	keyAutoResetFooter msgKey = "auto_reset_footer"
	keyFieldTiles      msgKey = "field_tiles"
	keyDrawDeckEmpty   msgKey = "draw_deck_empty"
	keyDrawHandFull    msgKey = "draw_hand_full"
	keyFieldHand       msgKey = "field_hand"
	keyHandEmpty       msgKey = "hand_empty"
	keyFieldRemaining  msgKey = "field_remaining"
	keyFieldDiscard    msgKey = "field_discard"
	keyDeckEmptyFooter msgKey = "deck_empty_footer"

	keyPlayTitle           msgKey = "play_title"
	keyFieldResolution     msgKey = "field_resolution"
	keyFieldRemainingHand  msgKey = "field_remaining_hand"
	keyDrawPrompt          msgKey = "draw_prompt"
	keyPlayDeckEmptyFooter msgKey = "play_deck_empty_footer"
	keyPlayEmptyHand       msgKey = "play_empty_hand"
	keyPlayOutOfRange      msgKey = "play_out_of_range"
	keyPlayDuplicateIndex  msgKey = "play_duplicate_index"
	keyPlayTooMany         msgKey = "play_too_many"
	keyPlayNoIndices       msgKey = "play_no_indices"
	keyPlayInvalidIndex    msgKey = "play_invalid_index"

	keyResetTitle      msgKey = "reset_title"
	keyResetNotAllowed msgKey = "reset_not_allowed"
	keyResetSelf       msgKey = "reset_self"
	keyResetOther      msgKey = "reset_other"

	keyHandTitle msgKey = "hand_title"

	keyRollResult      msgKey = "roll_result"
	keyRollFor         msgKey = "roll_for"
	keyRollDiceDetails msgKey = "roll_dice_details"
	keyRollCalculation msgKey = "roll_calculation"
	keyRolledBy        msgKey = "rolled_by"
	keyNoDefaultRoll   msgKey = "no_default_roll"
	keyInvalidDice     msgKey = "invalid_dice"

	keyUnknownColor    msgKey = "unknown_color"
	keyColorSet        msgKey = "color_set"
	keyUnknownLanguage msgKey = "unknown_language"
	keyLanguageSet     msgKey = "language_set"
	keyDefaultRollSet  msgKey = "default_roll_set"
)

// translations maps language then key to the user-facing string. English
// doubles as the fallback for missing keys in other languages.
var translations = map[string]map[msgKey]string{
	"en": {
		keyNotAvailable: "❌ This command is not available on this server.",
		keyCooldown:     "⏳ **Whoa there!** Wait **%s** before doing that again.",
		keyGenericError: "❌ Something went wrong.",

		keyDrawTitle:       "🪄 Tile Draw",
		keyDeckEmptyConfig: "❌ The configured deck is empty. Check the tile configuration.",
		keyAutoResetFooter: "A new deck has been built and shuffled.",
		keyFieldTiles:      "Tiles",
		keyDrawDeckEmpty:   "The deck is empty, no tiles left to draw.",
		keyDrawHandFull:    "Your hand is already full (5 tiles).",
		keyFieldHand:       "Current hand",
		keyHandEmpty:       "(no tiles in hand)",
		keyFieldRemaining:  "Remaining tiles",
		keyFieldDiscard:    "Discarded tiles",
		keyDeckEmptyFooter: "The deck is empty. If the encounter continues, use /reset-deck to start again.",

		keyPlayTitle:           "⚔️ Tiles aligned",
		keyFieldResolution:     "Resolution",
		keyFieldRemainingHand:  "Remaining hand",
		keyDrawPrompt:          "Use /draw to refill your hand up to five tiles.",
		keyPlayDeckEmptyFooter: "The deck is now empty. Consider /reset-deck if a new round begins.",
		keyPlayEmptyHand:       "❌ Your hand is empty. Use /draw to get tiles.",
		keyPlayOutOfRange:      "❌ One of the requested positions does not exist in your current hand.",
		keyPlayDuplicateIndex:  "❌ Each position can be used only once per command.",
		keyPlayTooMany:         "❌ You can only align three tiles per turn.",
		keyPlayNoIndices:       "❌ Provide at least one tile to use.",
		keyPlayInvalidIndex:    "❌ Positions must be valid numbers.",

		keyResetTitle:      "🃏 Deck Reset",
		keyResetNotAllowed: "⛔ This action is reserved for authorised administrators.",
		keyResetSelf:       "🆕 Your deck has been rebuilt and shuffled (%d tiles). Use /draw to get a five-tile hand.",
		keyResetOther:      "🆕 %s's deck has been rebuilt and shuffled (%d tiles). Invite them to use /draw to rebuild their hand.",

		keyHandTitle: "✋ Current Hand",

		keyRollResult:      "🎲 RESULT: **%d**",
		keyRollFor:         "🔻 For **%s**",
		keyRollDiceDetails: "Dice Details:",
		keyRollCalculation: "Calculation:",
		keyRolledBy:        "Rolled by %s",
		keyNoDefaultRoll:   "❌ No default roll set. Provide an expression or configure /set-default-roll.",
		keyInvalidDice:     "❌ Invalid dice expression. Use a format like `2d6+3` (max 50 dice, 99999 faces).",

		keyUnknownColor:    "❌ Unknown color. Options: bleu, rouge, vert, jaune.",
		keyColorSet:        "🎨 Your color is now **%s**.",
		keyUnknownLanguage: "❌ Unknown language. Available: en, fr, de, es.",
		keyLanguageSet:     "🌍 Server language is now **%s**.",
		keyDefaultRollSet:  "🎲 Default roll is now **%s**.",
	},
	"fr": {
		keyNotAvailable: "❌ Cette commande n'est pas disponible sur ce serveur.",
		keyCooldown:     "⏳ **Doucement !** Attendez **%s** avant de recommencer.",
		keyGenericError: "❌ Une erreur est survenue.",

		keyDrawTitle:       "🪄 Pioche des Tuiles",
		keyDeckEmptyConfig: "❌ Le paquet configuré est vide. Vérifiez la configuration des tuiles.",
		keyAutoResetFooter: "Un nouveau paquet a été constitué et mélangé.",
		keyFieldTiles:      "Tuiles",
		keyDrawDeckEmpty:   "Le paquet est vide, aucune tuile à piocher.",
		keyDrawHandFull:    "Votre main est déjà complète (5 tuiles).",
		keyFieldHand:       "Main actuelle",
		keyHandEmpty:       "(aucune tuile en main)",
		keyFieldRemaining:  "Tuiles restantes",
		keyFieldDiscard:    "Tuiles défaussées",
		keyDeckEmptyFooter: "Le paquet est vide. Si l'affrontement continue, utilisez /reset-deck pour recommencer.",

		keyPlayTitle:           "⚔️ Tuiles alignées",
		keyFieldResolution:     "Résolution",
		keyFieldRemainingHand:  "Main restante",
		keyDrawPrompt:          "Utilisez /draw pour compléter votre main jusqu'à cinq tuiles.",
		keyPlayDeckEmptyFooter: "Le paquet est désormais vide. Pensez à /reset-deck si une nouvelle manche débute.",
		keyPlayEmptyHand:       "❌ Votre main est vide. Utilisez /draw pour récupérer des tuiles.",
		keyPlayOutOfRange:      "❌ L'une des positions demandées n'existe pas dans votre main actuelle.",
		keyPlayDuplicateIndex:  "❌ Chaque position ne peut être utilisée qu'une seule fois par commande.",
		keyPlayTooMany:         "❌ Vous ne pouvez aligner que trois tuiles par tour.",
		keyPlayNoIndices:       "❌ Indiquez au moins une tuile à utiliser.",
		keyPlayInvalidIndex:    "❌ Les positions doivent être des nombres valides.",

		keyResetTitle:      "🃏 Paquet Réinitialisé",
		keyResetNotAllowed: "⛔ Cette action est réservée aux administrateurs autorisés.",
		keyResetSelf:       "🆕 Votre paquet a été reconstitué et mélangé (%d tuiles). Utilisez /draw pour récupérer une main de cinq tuiles.",
		keyResetOther:      "🆕 Le paquet de %s a été reconstitué et mélangé (%d tuiles). Invitez-le à utiliser /draw pour reformer sa main.",

		keyHandTitle: "✋ Main Actuelle",

		keyRollResult:      "🎲 RÉSULTAT : **%d**",
		keyRollFor:         "🔻 Pour **%s**",
		keyRollDiceDetails: "Détails des dés :",
		keyRollCalculation: "Calcul :",
		keyRolledBy:        "Lancé par %s",
		keyNoDefaultRoll:   "❌ Aucun jet par défaut défini. Fournissez une expression ou configurez /set-default-roll.",
		keyInvalidDice:     "❌ Expression de dés invalide. Utilisez un format comme `2d6+3` (max 50 dés, 99999 faces).",

		keyUnknownColor:    "❌ Couleur inconnue. Options : bleu, rouge, vert, jaune.",
		keyColorSet:        "🎨 Votre couleur est maintenant **%s**.",
		keyUnknownLanguage: "❌ Langue inconnue. Disponibles : en, fr, de, es.",
		keyLanguageSet:     "🌍 La langue du serveur est maintenant **%s**.",
		keyDefaultRollSet:  "🎲 Le jet par défaut est maintenant **%s**.",
	},
	"de": {
		keyNotAvailable: "❌ Dieser Befehl ist auf diesem Server nicht verfügbar.",
		keyCooldown:     "⏳ **Langsam!** Warte **%s**, bevor du das erneut tust.",
		keyGenericError: "❌ Etwas ist schiefgelaufen.",

		keyDrawTitle:       "🪄 Karten ziehen",
		keyDeckEmptyConfig: "❌ Das konfigurierte Deck ist leer. Überprüfe die Karteneinstellungen.",
		keyAutoResetFooter: "Ein neues Deck wurde erstellt und gemischt.",
		keyFieldTiles:      "Karten",
		keyDrawDeckEmpty:   "Das Deck ist leer, keine Karten zum Ziehen.",
		keyDrawHandFull:    "Deine Hand ist bereits voll (5 Karten).",
		keyFieldHand:       "Aktuelle Hand",
		keyHandEmpty:       "(keine Karten auf der Hand)",
		keyFieldRemaining:  "Verbleibende Karten",
		keyFieldDiscard:    "Abgeworfene Karten",
		keyDeckEmptyFooter: "Das Deck ist leer. Falls der Kampf weitergeht, nutze /reset-deck, um neu zu beginnen.",

		keyPlayTitle:           "⚔️ Karten ausgespielt",
		keyFieldResolution:     "Auflösung",
		keyFieldRemainingHand:  "Verbleibende Hand",
		keyDrawPrompt:          "Verwende /draw, um deine Hand auf fünf Karten aufzufüllen.",
		keyPlayDeckEmptyFooter: "Das Deck ist jetzt leer. Denke an /reset-deck, falls eine neue Runde beginnt.",
		keyPlayEmptyHand:       "❌ Deine Hand ist leer. Verwende /draw, um Karten zu erhalten.",
		keyPlayOutOfRange:      "❌ Eine der angeforderten Positionen existiert nicht in deiner aktuellen Hand.",
		keyPlayDuplicateIndex:  "❌ Jede Position kann nur einmal pro Befehl verwendet werden.",
		keyPlayTooMany:         "❌ Du kannst nur drei Karten pro Zug ausspielen.",
		keyPlayNoIndices:       "❌ Gib mindestens eine Karte an.",
		keyPlayInvalidIndex:    "❌ Die Positionen müssen gültige Zahlen sein.",

		keyResetTitle:      "🃏 Deck Zurückgesetzt",
		keyResetNotAllowed: "⛔ Diese Aktion ist autorisierten Administratoren vorbehalten.",
		keyResetSelf:       "🆕 Dein Deck wurde neu erstellt und gemischt (%d Karten). Verwende /draw für eine Hand mit fünf Karten.",
		keyResetOther:      "🆕 Das Deck von %s wurde neu erstellt und gemischt (%d Karten). Lade sie ein, /draw zu verwenden.",

		keyHandTitle: "✋ Aktuelle Hand",

		keyRollResult:      "🎲 ERGEBNIS: **%d**",
		keyRollFor:         "🔻 Für **%s**",
		keyRollDiceDetails: "Würfel Details:",
		keyRollCalculation: "Berechnung:",
		keyRolledBy:        "Gewürfelt von %s",
		keyNoDefaultRoll:   "❌ Kein Standardwurf gesetzt. Gib einen Ausdruck an oder konfiguriere /set-default-roll.",
		keyInvalidDice:     "❌ Ungültiger Würfelausdruck. Verwende ein Format wie `2d6+3` (max. 50 Würfel, 99999 Seiten).",

		keyUnknownColor:    "❌ Unbekannte Farbe. Optionen: bleu, rouge, vert, jaune.",
		keyColorSet:        "🎨 Deine Farbe ist jetzt **%s**.",
		keyUnknownLanguage: "❌ Unbekannte Sprache. Verfügbar: en, fr, de, es.",
		keyLanguageSet:     "🌍 Die Serversprache ist jetzt **%s**.",
		keyDefaultRollSet:  "🎲 Der Standardwurf ist jetzt **%s**.",
	},
	"es": {
		keyNotAvailable: "❌ Este comando no está disponible en este servidor.",
		keyCooldown:     "⏳ **¡Despacio!** Espera **%s** antes de volver a hacerlo.",
		keyGenericError: "❌ Algo salió mal.",

		keyDrawTitle:       "🪄 Robo de Fichas",
		keyDeckEmptyConfig: "❌ El mazo configurado está vacío. Revisa la configuración de fichas.",
		keyAutoResetFooter: "Se ha creado y barajado un nuevo mazo.",
		keyFieldTiles:      "Fichas",
		keyDrawDeckEmpty:   "El mazo está vacío, no quedan fichas para robar.",
		keyDrawHandFull:    "Tu mano ya está completa (5 fichas).",
		keyFieldHand:       "Mano actual",
		keyHandEmpty:       "(sin fichas en la mano)",
		keyFieldRemaining:  "Fichas restantes",
		keyFieldDiscard:    "Fichas descartadas",
		keyDeckEmptyFooter: "El mazo está vacío. Si el encuentro continúa, usa /reset-deck para empezar de nuevo.",

		keyPlayTitle:           "⚔️ Fichas alineadas",
		keyFieldResolution:     "Resolución",
		keyFieldRemainingHand:  "Mano restante",
		keyDrawPrompt:          "Usa /draw para rellenar tu mano hasta cinco fichas.",
		keyPlayDeckEmptyFooter: "El mazo está vacío. Considera /reset-deck si empieza una nueva ronda.",
		keyPlayEmptyHand:       "❌ Tu mano está vacía. Usa /draw para conseguir fichas.",
		keyPlayOutOfRange:      "❌ Una de las posiciones solicitadas no existe en tu mano actual.",
		keyPlayDuplicateIndex:  "❌ Cada posición solo puede usarse una vez por comando.",
		keyPlayTooMany:         "❌ Solo puedes alinear tres fichas por turno.",
		keyPlayNoIndices:       "❌ Indica al menos una ficha para usar.",
		keyPlayInvalidIndex:    "❌ Las posiciones deben ser números válidos.",

		keyResetTitle:      "🃏 Mazo Restablecido",
		keyResetNotAllowed: "⛔ Esta acción está reservada a administradores autorizados.",
		keyResetSelf:       "🆕 Tu mazo ha sido reconstruido y barajado (%d fichas). Usa /draw para conseguir una mano de cinco fichas.",
		keyResetOther:      "🆕 El mazo de %s ha sido reconstruido y barajado (%d fichas). Invítale a usar /draw para rehacer su mano.",

		keyHandTitle: "✋ Mano Actual",

		keyRollResult:      "🎲 RESULTADO: **%d**",
		keyRollFor:         "🔻 Para **%s**",
		keyRollDiceDetails: "Detalles de los dados:",
		keyRollCalculation: "Cálculo:",
		keyRolledBy:        "Lanzado por %s",
		keyNoDefaultRoll:   "❌ No hay tirada por defecto. Proporciona una expresión o configura /set-default-roll.",
		keyInvalidDice:     "❌ Expresión de dados inválida. Usa un formato como `2d6+3` (máx. 50 dados, 99999 caras).",

		keyUnknownColor:    "❌ Color desconocido. Opciones: bleu, rouge, vert, jaune.",
		keyColorSet:        "🎨 Tu color ahora es **%s**.",
		keyUnknownLanguage: "❌ Idioma desconocido. Disponibles: en, fr, de, es.",
		keyLanguageSet:     "🌍 El idioma del servidor ahora es **%s**.",
		keyDefaultRollSet:  "🎲 La tirada por defecto ahora es **%s**.",
	},
}

// tr looks up a message for a language, falling back to English.
func tr(lang string, key msgKey) string {
	if table, ok := translations[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	return translations["en"][key]
}

// colorHex maps preference color names to embed colors.
var colorHex = map[string]int{
	domain.ColorBlue:   0x3498db,
	domain.ColorRed:    0xe74c3c,
	domain.ColorGreen:  0x2ecc71,
	domain.ColorYellow: 0xf1c40f,
}

const defaultEmbedColor = 0x3498db

// embedColor resolves the embed color from the user's preference.
func embedColor(ctx context.Context, deps *Deps, userID int64) int {
	if hex, ok := colorHex[deps.Prefs.Color(ctx, userID)]; ok {
		return hex
	}
	return defaultEmbedColor
}
